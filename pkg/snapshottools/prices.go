package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

type ethPriceInput struct {
	BlockNumber *int64 `json:"block_number"`
}

type tokenPricePoolInput struct {
	TokenAddress string  `json:"token_address"`
	PoolAddress  *string `json:"pool_address"`
	BlockNumber  *int64  `json:"block_number"`
}

type tokenPriceAllInput struct {
	TokenAddress string `json:"token_address"`
	BlockNumber  *int64 `json:"block_number"`
}

type priceSeriesInput struct {
	TokenAddress string `json:"token_address"`
	PoolAddress  string `json:"pool_address"`
	TimeInterval int64  `json:"time_interval"`
	StepSeconds  int64  `json:"step_seconds"`
}

func priceTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_ethprice",
			Description: "Get ETH price data for a specific block number or latest finalized epoch.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"block_number":{"type":"integer","description":"Optional block number. If not provided, returns latest finalized epoch data"}}}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in ethPriceInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_ethprice: invalid input: %w", err)
				}

				var (
					price *bdsapi.EthPrice
					err   error
				)
				if in.BlockNumber != nil {
					price, err = c.EthPriceAt(ctx, *in.BlockNumber)
				} else {
					price, err = c.EthPrice(ctx)
				}
				if err != nil {
					return "", fmt.Errorf("get_ethprice: %w", err)
				}

				return marshalResult(price)
			},
		},
		toolbox.Tool{
			Name:        "get_token_price_pool",
			Description: "Get token price for a specific pool and block number.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"},"pool_address":{"type":"string","description":"Optional pool address"},"block_number":{"type":"integer","description":"Optional block number"}},"required":["token_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in tokenPricePoolInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_token_price_pool: invalid input: %w", err)
				}

				// Without a pool address there is no upstream endpoint to
				// call; a block number alone does not select one either.
				if in.PoolAddress == nil || *in.PoolAddress == "" {
					return "", fmt.Errorf("get_token_price_pool: %w: either pool_address or block_number must be provided", bdsapi.ErrInvalidArgument)
				}

				var (
					price float64
					err   error
				)
				if in.BlockNumber != nil {
					price, err = c.TokenPriceInPoolAt(ctx, in.TokenAddress, *in.PoolAddress, *in.BlockNumber)
				} else {
					price, err = c.TokenPriceInPool(ctx, in.TokenAddress, *in.PoolAddress)
				}
				if err != nil {
					return "", fmt.Errorf("get_token_price_pool: %w", err)
				}

				return marshalResult(price)
			},
		},
		toolbox.Tool{
			Name:        "get_token_price_all",
			Description: "Get token prices across all pools where the token is traded.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"},"block_number":{"type":"integer","description":"Optional block number. If not provided, returns latest data"}},"required":["token_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in tokenPriceAllInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_token_price_all: invalid input: %w", err)
				}

				var (
					prices bdsapi.TokenPriceAll
					err    error
				)
				if in.BlockNumber != nil {
					prices, err = c.TokenPriceAllAt(ctx, in.TokenAddress, *in.BlockNumber)
				} else {
					prices, err = c.TokenPriceAll(ctx, in.TokenAddress)
				}
				if err != nil {
					return "", fmt.Errorf("get_token_price_all: %w", err)
				}

				return marshalResult(prices)
			},
		},
		toolbox.Tool{
			Name:        "get_token_price_series",
			Description: "Get time series of token prices for analysis of price trends and patterns.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"},"pool_address":{"type":"string","description":"The contract address of the pool"},"time_interval":{"type":"integer","description":"Time interval for the series"},"step_seconds":{"type":"integer","description":"Step size in seconds between data points"}},"required":["token_address","pool_address","time_interval","step_seconds"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in priceSeriesInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_token_price_series: invalid input: %w", err)
				}

				series, err := c.TokenPriceSeries(ctx, in.TokenAddress, in.PoolAddress, in.TimeInterval, in.StepSeconds)
				if err != nil {
					return "", fmt.Errorf("get_token_price_series: %w", err)
				}

				return marshalResult(series)
			},
		},
	)

	return tb
}
