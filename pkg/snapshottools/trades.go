package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

type tokenVolumeInput struct {
	TokenAddress string `json:"token_address"`
	TimeInterval int64  `json:"time_interval"`
}

type poolVolumeInput struct {
	PoolAddress  string `json:"pool_address"`
	TimeInterval int64  `json:"time_interval"`
}

type poolTradesInput struct {
	PoolAddress    string `json:"pool_address"`
	StartTimestamp int64  `json:"start_timestamp"`
	EndTimestamp   int64  `json:"end_timestamp"`
}

func tradeTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_trade_volume_agg_all_pools",
			Description: "Get aggregated trade volume for a token across all pools over a time interval.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"},"time_interval":{"type":"integer","description":"Time interval in seconds for aggregation"}},"required":["token_address","time_interval"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in tokenVolumeInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_trade_volume_agg_all_pools: invalid input: %w", err)
				}

				vol, err := c.TradeVolumeAllPools(ctx, in.TokenAddress, in.TimeInterval)
				if err != nil {
					return "", fmt.Errorf("get_trade_volume_agg_all_pools: %w", err)
				}

				return marshalResult(vol)
			},
		},
		toolbox.Tool{
			Name:        "get_trade_volume_agg",
			Description: "Get aggregated trade volume for a specific pool over a time interval.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"pool_address":{"type":"string","description":"The contract address of the pool"},"time_interval":{"type":"integer","description":"Time interval in seconds for aggregation"}},"required":["pool_address","time_interval"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in poolVolumeInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_trade_volume_agg: invalid input: %w", err)
				}

				vol, err := c.TradeVolume(ctx, in.PoolAddress, in.TimeInterval)
				if err != nil {
					return "", fmt.Errorf("get_trade_volume_agg: %w", err)
				}

				return marshalResult(vol)
			},
		},
		toolbox.Tool{
			Name:        "get_pool_trades",
			Description: "Get detailed trade data from a specific pool over a time period.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"pool_address":{"type":"string","description":"The contract address of the pool"},"start_timestamp":{"type":"integer","description":"Start timestamp for the query range"},"end_timestamp":{"type":"integer","description":"End timestamp for the query range"}},"required":["pool_address","start_timestamp","end_timestamp"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in poolTradesInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_pool_trades: invalid input: %w", err)
				}

				trades, err := c.PoolTrades(ctx, in.PoolAddress, in.StartTimestamp, in.EndTimestamp)
				if err != nil {
					return "", fmt.Errorf("get_pool_trades: %w", err)
				}

				return marshalResult(trades)
			},
		},
	)

	return tb
}
