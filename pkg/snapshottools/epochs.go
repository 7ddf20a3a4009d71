package snapshottools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

type epochInfoInput struct {
	EpochID int64 `json:"epoch_id"`
}

type projectInput struct {
	ProjectID string `json:"project_id"`
}

type projectEpochInput struct {
	ProjectID string `json:"project_id"`
	EpochID   int64  `json:"epoch_id"`
}

func epochTools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "get_current_epoch_data",
			Description: "Get information about the currently active epoch.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				epoch, err := c.CurrentEpoch(ctx)
				if err != nil {
					return "", fmt.Errorf("get_current_epoch_data: %w", err)
				}

				return marshalResult(epoch)
			},
		},
		toolbox.Tool{
			Name:        "get_epoch_info",
			Description: "Get detailed information about a specific epoch.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"epoch_id":{"type":"integer","description":"The unique identifier of the epoch"}},"required":["epoch_id"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in epochInfoInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_epoch_info: invalid input: %w", err)
				}

				info, err := c.EpochInfo(ctx, in.EpochID)
				if err != nil {
					return "", fmt.Errorf("get_epoch_info: %w", err)
				}

				return marshalResult(info)
			},
		},
		toolbox.Tool{
			Name:        "get_project_last_finalized_epoch_info",
			Description: "Get the last finalized epoch information for a specific project.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"project_id":{"type":"string","description":"The unique identifier of the project"}},"required":["project_id"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in projectInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_project_last_finalized_epoch_info: invalid input: %w", err)
				}

				info, err := c.ProjectLastFinalizedEpoch(ctx, in.ProjectID)
				if err != nil {
					return "", fmt.Errorf("get_project_last_finalized_epoch_info: %w", err)
				}

				return marshalResult(info)
			},
		},
		toolbox.Tool{
			Name:        "get_data_for_project_id_epoch_id",
			Description: "Get comprehensive data for a specific project and epoch combination.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"project_id":{"type":"string","description":"The unique identifier of the project"},"epoch_id":{"type":"integer","description":"The unique identifier of the epoch"}},"required":["project_id","epoch_id"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in projectEpochInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_data_for_project_id_epoch_id: invalid input: %w", err)
				}

				data, err := c.ProjectEpochData(ctx, in.ProjectID, in.EpochID)
				if err != nil {
					return "", fmt.Errorf("get_data_for_project_id_epoch_id: %w", err)
				}

				return marshalResult(data)
			},
		},
		toolbox.Tool{
			Name:        "get_finalized_cid_for_project_id_epoch_id",
			Description: "Get the finalized IPFS CID for a specific project and epoch combination.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"project_id":{"type":"string","description":"The unique identifier of the project"},"epoch_id":{"type":"integer","description":"The unique identifier of the epoch"}},"required":["project_id","epoch_id"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in projectEpochInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("get_finalized_cid_for_project_id_epoch_id: invalid input: %w", err)
				}

				cid, err := c.FinalizedCID(ctx, in.ProjectID, in.EpochID)
				if err != nil {
					return "", fmt.Errorf("get_finalized_cid_for_project_id_epoch_id: %w", err)
				}

				return marshalResult(cid)
			},
		},
	)

	return tb
}
