// Package snapshottools defines the MCP tool catalog over the Snapshotter
// Core API. Each tool maps its arguments to exactly one upstream GET via the
// bdsapi client and returns the schema-validated result as JSON text.
// Invocations are stateless and safe to run concurrently.
package snapshottools

import (
	"encoding/json"
	"fmt"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi"
	"github.com/powerloom/snapshotter-mcp/pkg/toolbox"
)

// Tools returns a ToolBox with every Snapshotter tool wired to the given
// client.
func Tools(c *bdsapi.Client) *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Merge(poolTools(c))
	tb.Merge(priceTools(c))
	tb.Merge(snapshotTools(c))
	tb.Merge(tradeTools(c))
	tb.Merge(activityTools(c))
	tb.Merge(epochTools(c))
	tb.Merge(healthTools(c))

	return tb
}

// marshalResult renders a typed API result as the tool's JSON text output.
func marshalResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	return string(data), nil
}
