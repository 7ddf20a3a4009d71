package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

func healthTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "health_check",
			Description: "Check the health status of the Snapshotter Core API service.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				health, err := c.Health(ctx)
				if err != nil {
					return "", fmt.Errorf("health_check: %w", err)
				}

				return marshalResult(health)
			},
		},
	)

	return tb
}
