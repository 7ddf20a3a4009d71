package bdsapi

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// The upstream API is lenient about numeric encoding: values that are
// conceptually numbers occasionally arrive as numeric strings. The scalar
// types below accept both forms, matching what the upstream's own validator
// tolerates.

// Float64 is a float64 that decodes from a JSON number or a numeric string.
type Float64 float64

func (f *Float64) UnmarshalJSON(data []byte) error {
	n, err := decodeNumber(data)
	if err != nil {
		return err
	}

	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("parse number %q: %w", n, err)
	}
	*f = Float64(v)

	return nil
}

// Int64 is an int64 that decodes from a JSON number or a numeric string.
type Int64 int64

func (i *Int64) UnmarshalJSON(data []byte) error {
	n, err := decodeNumber(data)
	if err != nil {
		return err
	}

	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", n, err)
	}
	*i = Int64(v)

	return nil
}

// BigInt preserves integers too large for int64, such as pool liquidity and
// sqrtPriceX96 values. It decodes from a JSON number or a numeric string and
// marshals back as a bare number, keeping the exact digits it was given.
type BigInt string

func (b *BigInt) UnmarshalJSON(data []byte) error {
	n, err := decodeNumber(data)
	if err != nil {
		return err
	}

	if _, ok := new(big.Int).SetString(n.String(), 10); !ok {
		return fmt.Errorf("parse big integer %q: not a base-10 integer", n)
	}
	*b = BigInt(n)

	return nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	if b == "" {
		return []byte("0"), nil
	}
	return []byte(b), nil
}

// decodeNumber reads a JSON number, falling back to a JSON string holding a
// number.
func decodeNumber(data []byte) (json.Number, error) {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("number or numeric string required, got %s", data)
	}

	return json.Number(s), nil
}
