package bdsapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Float64
	}{
		{"number", `1.5`, 1.5},
		{"integer number", `42`, 42},
		{"numeric string", `"3.25"`, 3.25},
		{"scientific notation", `1e3`, 1000},
		{"negative string", `"-0.5"`, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float64
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFloat64UnmarshalInvalid(t *testing.T) {
	var f Float64
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &f))
}

func TestInt64Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Int64
	}{
		{"number", `123`, 123},
		{"numeric string", `"456"`, 456},
		{"negative", `-7`, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Int64
			require.NoError(t, json.Unmarshal([]byte(tt.input), &i))
			assert.Equal(t, tt.want, i)
		})
	}
}

func TestInt64UnmarshalInvalid(t *testing.T) {
	var i Int64
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &i))
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &i))
	assert.Error(t, json.Unmarshal([]byte(`null`), &i))
}

func TestBigIntUnmarshal(t *testing.T) {
	// sqrtPriceX96 values exceed int64.
	const huge = `79228162514264337593543950336`

	var b BigInt
	require.NoError(t, json.Unmarshal([]byte(huge), &b))
	assert.Equal(t, BigInt("79228162514264337593543950336"), b)

	require.NoError(t, json.Unmarshal([]byte(`"`+huge+`"`), &b))
	assert.Equal(t, BigInt("79228162514264337593543950336"), b)
}

func TestBigIntUnmarshalInvalid(t *testing.T) {
	var b BigInt
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &b))
	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &b))
}

func TestBigIntMarshal(t *testing.T) {
	out, err := json.Marshal(BigInt("79228162514264337593543950336"))
	require.NoError(t, err)
	assert.Equal(t, `79228162514264337593543950336`, string(out))

	out, err = json.Marshal(BigInt(""))
	require.NoError(t, err)
	assert.Equal(t, `0`, string(out))
}

func TestBigIntRoundTrip(t *testing.T) {
	in := []byte(`{"liquidity": 340282366920938463463374607431768211455}`)

	var v struct {
		Liquidity BigInt `json:"liquidity"`
	}
	require.NoError(t, json.Unmarshal(in, &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}
