package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

type tokenBaseSnapshotsInput struct {
	TokenAddress string `json:"token_address"`
}

type poolSnapshotInput struct {
	PoolAddress string `json:"pool_address"`
	BlockNumber *int64 `json:"block_number"`
}

type allTradesSnapshotInput struct {
	BlockNumber *int64 `json:"block_number"`
}

func snapshotTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_token_base_snapshots",
			Description: "Get base snapshots for a token across all pools.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"}},"required":["token_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in tokenBaseSnapshotsInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_token_base_snapshots: invalid input: %w", err)
				}

				snaps, err := c.TokenBaseSnapshots(ctx, in.TokenAddress)
				if err != nil {
					return "", fmt.Errorf("get_token_base_snapshots: %w", err)
				}

				return marshalResult(snaps)
			},
		},
		toolbox.Tool{
			Name:        "get_base_snapshot",
			Description: "Get comprehensive base snapshot data for a specific pool.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"pool_address":{"type":"string","description":"The contract address of the pool"},"block_number":{"type":"integer","description":"Optional block number. If not provided, returns latest data"}},"required":["pool_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in poolSnapshotInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_base_snapshot: invalid input: %w", err)
				}

				var (
					snap *bdsapi.BaseSnapshot
					err  error
				)
				if in.BlockNumber != nil {
					snap, err = c.BaseSnapshotAt(ctx, in.PoolAddress, *in.BlockNumber)
				} else {
					snap, err = c.BaseSnapshot(ctx, in.PoolAddress)
				}
				if err != nil {
					return "", fmt.Errorf("get_base_snapshot: %w", err)
				}

				return marshalResult(snap)
			},
		},
		toolbox.Tool{
			Name:        "get_trades_snapshot",
			Description: "Get all trades that occurred in a pool during a specific epoch.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"pool_address":{"type":"string","description":"The contract address of the pool"},"block_number":{"type":"integer","description":"Optional block number. If not provided, returns latest epoch data"}},"required":["pool_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in poolSnapshotInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_trades_snapshot: invalid input: %w", err)
				}

				var (
					snap *bdsapi.TradesSnapshot
					err  error
				)
				if in.BlockNumber != nil {
					snap, err = c.TradesSnapshotAt(ctx, in.PoolAddress, *in.BlockNumber)
				} else {
					snap, err = c.TradesSnapshot(ctx, in.PoolAddress)
				}
				if err != nil {
					return "", fmt.Errorf("get_trades_snapshot: %w", err)
				}

				return marshalResult(snap)
			},
		},
		toolbox.Tool{
			Name:        "get_all_trades_snapshot",
			Description: "Get trades snapshot data across all pools.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"block_number":{"type":"integer","description":"Optional block number. If not provided, returns latest epoch data"}}}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in allTradesSnapshotInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_all_trades_snapshot: invalid input: %w", err)
				}

				var (
					snap *bdsapi.AllTradesSnapshot
					err  error
				)
				if in.BlockNumber != nil {
					snap, err = c.AllTradesSnapshotAt(ctx, *in.BlockNumber)
				} else {
					snap, err = c.AllTradesSnapshot(ctx)
				}
				if err != nil {
					return "", fmt.Errorf("get_all_trades_snapshot: %w", err)
				}

				return marshalResult(snap)
			},
		},
	)

	return tb
}
