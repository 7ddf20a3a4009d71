package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

type poolMetadataInput struct {
	PoolAddress string `json:"pool_address"`
}

type tokenPoolsInput struct {
	TokenAddress string `json:"token_address"`
}

func poolTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_pool_metadata",
			Description: "Get the metadata for a specific pool including token information, fees, and factory address.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"pool_address":{"type":"string","description":"The contract address of the liquidity pool"}},"required":["pool_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in poolMetadataInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_pool_metadata: invalid input: %w", err)
				}

				md, err := c.PoolMetadata(ctx, in.PoolAddress)
				if err != nil {
					return "", fmt.Errorf("get_pool_metadata: %w", err)
				}

				return marshalResult(md)
			},
		},
		toolbox.Tool{
			Name:        "get_token_pools",
			Description: "Get all liquidity pools that contain a specific token.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"token_address":{"type":"string","description":"The contract address of the token"}},"required":["token_address"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in tokenPoolsInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_token_pools: invalid input: %w", err)
				}

				pools, err := c.TokenPools(ctx, in.TokenAddress)
				if err != nil {
					return "", fmt.Errorf("get_token_pools: %w", err)
				}

				return marshalResult(pools)
			},
		},
	)

	return tb
}
