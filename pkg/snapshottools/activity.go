package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

// Pagination defaults for the daily-activity tools.
const (
	defaultPage         = 1
	defaultSize         = 50
	defaultTimeInterval = 86400
)

type activityInput struct {
	Page         int64 `json:"page"`
	Size         int64 `json:"size"`
	Metadata     bool  `json:"metadata"`
	TimeInterval int64 `json:"time_interval"`
}

// query applies the defaults for omitted parameters. The client sends all
// four keys on the wire either way.
func (in activityInput) query() bdsapi.ActivityQuery {
	q := bdsapi.ActivityQuery{
		Page:         in.Page,
		Size:         in.Size,
		Metadata:     in.Metadata,
		TimeInterval: in.TimeInterval,
	}
	if q.Page <= 0 {
		q.Page = defaultPage
	}
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.TimeInterval <= 0 {
		q.TimeInterval = defaultTimeInterval
	}
	return q
}

const activitySchema = `{"type":"object","properties":{"page":{"type":"integer","description":"Page number for pagination","default":1},"size":{"type":"integer","description":"Number of items per page","default":50},"metadata":{"type":"boolean","description":"Whether to include metadata","default":false},"time_interval":{"type":"integer","description":"Time interval in seconds","default":86400}}}`

func activityTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_daily_active_tokens",
			Description: "Get tokens that had trading activity during a specific period with pagination.",
			InputSchema: json.RawMessage(activitySchema),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in activityInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_daily_active_tokens: invalid input: %w", err)
				}

				tokens, err := c.DailyActiveTokens(ctx, in.query())
				if err != nil {
					return "", fmt.Errorf("get_daily_active_tokens: %w", err)
				}

				return marshalResult(tokens)
			},
		},
		toolbox.Tool{
			Name:        "get_daily_active_pools",
			Description: "Get pools that had trading activity during a specific period with pagination.",
			InputSchema: json.RawMessage(activitySchema),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in activityInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_daily_active_pools: invalid input: %w", err)
				}

				pools, err := c.DailyActivePools(ctx, in.query())
				if err != nil {
					return "", fmt.Errorf("get_daily_active_pools: %w", err)
				}

				return marshalResult(pools)
			},
		},
	)

	return tb
}
