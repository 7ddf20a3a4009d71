// Package bdsapi is a client for the Powerloom Snapshotter Core (BDS) REST
// API. Every call is a single GET: build the URL, check the status, validate
// the JSON body against the endpoint's declared schema, and decode it into a
// typed value. Nothing is retried, cached, or shared between calls beyond
// the immutable base URL.
package bdsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/powerloom/snapshotter-mcp/pkg/bdsapi/schema"
)

// maxBodySize caps response bodies. Snapshot payloads can run large.
const maxBodySize = 16 << 20

// Client issues requests against one Snapshotter Core API endpoint. It is
// safe for concurrent use; invocations share no mutable state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the configured base URL.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// PoolMetadata fetches the metadata for one pool.
func (c *Client) PoolMetadata(ctx context.Context, poolAddress string) (*PoolMetadata, error) {
	var out PoolMetadata
	if err := c.get(ctx, "/pool/"+url.PathEscape(poolAddress)+"/metadata", nil, schema.PoolMetadata, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenPools fetches every pool containing the given token.
func (c *Client) TokenPools(ctx context.Context, tokenAddress string) (*TokenPools, error) {
	var out TokenPools
	if err := c.get(ctx, "/token/"+url.PathEscape(tokenAddress)+"/pools", nil, schema.TokenPools, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EthPrice fetches the ETH price snapshot for the latest finalized epoch.
func (c *Client) EthPrice(ctx context.Context) (*EthPrice, error) {
	var out EthPrice
	if err := c.get(ctx, "/ethPrice", nil, schema.EthPrice, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EthPriceAt fetches the ETH price snapshot for a specific block. This is a
// distinct upstream endpoint from EthPrice, not a defaulted parameter.
func (c *Client) EthPriceAt(ctx context.Context, blockNumber int64) (*EthPrice, error) {
	var out EthPrice
	if err := c.get(ctx, "/ethPrice/"+formatInt(blockNumber), nil, schema.EthPrice, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenPriceInPool fetches a token's latest price in one pool.
func (c *Client) TokenPriceInPool(ctx context.Context, tokenAddress, poolAddress string) (float64, error) {
	var out float64
	path := "/token/price/" + url.PathEscape(tokenAddress) + "/" + url.PathEscape(poolAddress)
	if err := c.get(ctx, path, nil, schema.TokenPricePool, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// TokenPriceInPoolAt fetches a token's price in one pool at a specific block.
func (c *Client) TokenPriceInPoolAt(ctx context.Context, tokenAddress, poolAddress string, blockNumber int64) (float64, error) {
	var out float64
	path := "/token/price/" + url.PathEscape(tokenAddress) + "/" + url.PathEscape(poolAddress) + "/" + formatInt(blockNumber)
	if err := c.get(ctx, path, nil, schema.TokenPricePool, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// TokenBaseSnapshots fetches base snapshots for a token across all its pools.
// The per-pool payloads are opaque.
func (c *Client) TokenBaseSnapshots(ctx context.Context, tokenAddress string) (TokenBaseSnapshots, error) {
	var out TokenBaseSnapshots
	if err := c.get(ctx, "/snapshot/base_all_pools/"+url.PathEscape(tokenAddress), nil, schema.TokenBaseSnapshots, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BaseSnapshot fetches the latest base snapshot for a pool.
func (c *Client) BaseSnapshot(ctx context.Context, poolAddress string) (*BaseSnapshot, error) {
	var out BaseSnapshot
	if err := c.get(ctx, "/snapshot/base/"+url.PathEscape(poolAddress), nil, schema.BaseSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BaseSnapshotAt fetches the base snapshot for a pool at a specific block.
func (c *Client) BaseSnapshotAt(ctx context.Context, poolAddress string, blockNumber int64) (*BaseSnapshot, error) {
	var out BaseSnapshot
	path := "/snapshot/base/" + url.PathEscape(poolAddress) + "/" + formatInt(blockNumber)
	if err := c.get(ctx, path, nil, schema.BaseSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradesSnapshot fetches the latest trades snapshot for a pool.
func (c *Client) TradesSnapshot(ctx context.Context, poolAddress string) (*TradesSnapshot, error) {
	var out TradesSnapshot
	if err := c.get(ctx, "/snapshot/trades/"+url.PathEscape(poolAddress), nil, schema.TradesSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradesSnapshotAt fetches the trades snapshot for a pool at a specific block.
func (c *Client) TradesSnapshotAt(ctx context.Context, poolAddress string, blockNumber int64) (*TradesSnapshot, error) {
	var out TradesSnapshot
	path := "/snapshot/trades/" + url.PathEscape(poolAddress) + "/" + formatInt(blockNumber)
	if err := c.get(ctx, path, nil, schema.TradesSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllTradesSnapshot fetches the latest trades snapshot across all pools.
func (c *Client) AllTradesSnapshot(ctx context.Context) (*AllTradesSnapshot, error) {
	var out AllTradesSnapshot
	if err := c.get(ctx, "/snapshot/allTrades", nil, schema.AllTradesSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllTradesSnapshotAt fetches the trades snapshot across all pools at a
// specific block.
func (c *Client) AllTradesSnapshotAt(ctx context.Context, blockNumber int64) (*AllTradesSnapshot, error) {
	var out AllTradesSnapshot
	if err := c.get(ctx, "/snapshot/allTrades/"+formatInt(blockNumber), nil, schema.AllTradesSnapshot, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenPriceAll fetches a token's latest price in every pool it trades in.
func (c *Client) TokenPriceAll(ctx context.Context, tokenAddress string) (TokenPriceAll, error) {
	var out TokenPriceAll
	if err := c.get(ctx, "/tokenPrices/all/"+url.PathEscape(tokenAddress), nil, schema.TokenPriceAll, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TokenPriceAllAt fetches a token's price in every pool at a specific block.
func (c *Client) TokenPriceAllAt(ctx context.Context, tokenAddress string, blockNumber int64) (TokenPriceAll, error) {
	var out TokenPriceAll
	path := "/tokenPrices/all/" + url.PathEscape(tokenAddress) + "/" + formatInt(blockNumber)
	if err := c.get(ctx, path, nil, schema.TokenPriceAll, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradeVolumeAllPools fetches a token's aggregated trade volume across all
// pools over a time interval in seconds.
func (c *Client) TradeVolumeAllPools(ctx context.Context, tokenAddress string, timeInterval int64) (*TradeVolume, error) {
	var out TradeVolume
	path := "/tradeVolumeAllPools/" + url.PathEscape(tokenAddress) + "/" + formatInt(timeInterval)
	if err := c.get(ctx, path, nil, schema.TradeVolume, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradeVolume fetches one pool's aggregated trade volume over a time interval
// in seconds.
func (c *Client) TradeVolume(ctx context.Context, poolAddress string, timeInterval int64) (*TradeVolume, error) {
	var out TradeVolume
	path := "/tradeVolume/" + url.PathEscape(poolAddress) + "/" + formatInt(timeInterval)
	if err := c.get(ctx, path, nil, schema.TradeVolume, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PoolTrades fetches the raw trades for a pool between two unix timestamps.
func (c *Client) PoolTrades(ctx context.Context, poolAddress string, startTimestamp, endTimestamp int64) (PoolTrades, error) {
	var out PoolTrades
	path := "/poolTrades/" + url.PathEscape(poolAddress) + "/" + formatInt(startTimestamp) + "/" + formatInt(endTimestamp)
	if err := c.get(ctx, path, nil, schema.PoolTrades, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TokenPriceSeries fetches a token's price series in one pool, sampled every
// stepSeconds over timeInterval seconds.
func (c *Client) TokenPriceSeries(ctx context.Context, tokenAddress, poolAddress string, timeInterval, stepSeconds int64) (*TokenPriceSeries, error) {
	var out TokenPriceSeries
	path := "/timeSeries/" + url.PathEscape(tokenAddress) + "/" + url.PathEscape(poolAddress) +
		"/" + formatInt(timeInterval) + "/" + formatInt(stepSeconds)
	if err := c.get(ctx, path, nil, schema.TokenPriceSeries, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityQuery is the pagination and filtering for the daily-activity
// endpoints. All four parameters are always sent on the wire.
type ActivityQuery struct {
	Page         int64
	Size         int64
	Metadata     bool
	TimeInterval int64
}

func (q ActivityQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", formatInt(q.Page))
	v.Set("size", formatInt(q.Size))
	v.Set("metadata", strconv.FormatBool(q.Metadata))
	v.Set("time_interval", formatInt(q.TimeInterval))
	return v
}

// DailyActiveTokens fetches a page of tokens with recent trading activity.
func (c *Client) DailyActiveTokens(ctx context.Context, q ActivityQuery) (*DailyActiveTokens, error) {
	var out DailyActiveTokens
	if err := c.get(ctx, "/dailyActiveTokens", q.values(), schema.DailyActiveTokens, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyActivePools fetches a page of pools with recent trading activity.
func (c *Client) DailyActivePools(ctx context.Context, q ActivityQuery) (*DailyActivePools, error) {
	var out DailyActivePools
	if err := c.get(ctx, "/dailyActivePools", q.values(), schema.DailyActivePools, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks the upstream service health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", nil, schema.Health, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentEpoch fetches the currently active epoch.
func (c *Client) CurrentEpoch(ctx context.Context) (*CurrentEpoch, error) {
	var out CurrentEpoch
	if err := c.get(ctx, "/current_epoch", nil, schema.CurrentEpoch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EpochInfo fetches information about a specific epoch.
func (c *Client) EpochInfo(ctx context.Context, epochID int64) (*EpochInfo, error) {
	var out EpochInfo
	if err := c.get(ctx, "/epoch/"+formatInt(epochID), nil, schema.EpochInfo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectLastFinalizedEpoch fetches the last finalized epoch for a project.
func (c *Client) ProjectLastFinalizedEpoch(ctx context.Context, projectID string) (*ProjectLastFinalizedEpoch, error) {
	var out ProjectLastFinalizedEpoch
	if err := c.get(ctx, "/last_finalized_epoch/"+url.PathEscape(projectID), nil, schema.ProjectLastFinalizedEpoch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectEpochData fetches the finalized payload for a project and epoch.
func (c *Client) ProjectEpochData(ctx context.Context, projectID string, epochID int64) (*ProjectEpochData, error) {
	var out ProjectEpochData
	path := "/data/" + formatInt(epochID) + "/" + url.PathEscape(projectID) + "/"
	if err := c.get(ctx, path, nil, schema.ProjectEpochData, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FinalizedCID fetches the finalized IPFS CID for a project and epoch.
func (c *Client) FinalizedCID(ctx context.Context, projectID string, epochID int64) (string, error) {
	var out string
	path := "/cid/" + formatInt(epochID) + "/" + url.PathEscape(projectID) + "/"
	if err := c.get(ctx, path, nil, schema.FinalizedCID, &out); err != nil {
		return "", err
	}
	return out, nil
}

// get performs one GET against the upstream. A non-2xx response becomes a
// StatusError; a body that fails schema validation or typed decoding becomes
// a ValidationError. No error is recovered locally.
func (c *Client) get(ctx context.Context, path string, query url.Values, res *schema.Resolved, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("bdsapi: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bdsapi: get %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on read

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("bdsapi: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := schema.Validate(res, body); err != nil {
		return &ValidationError{Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ValidationError{Path: decodePath(err), Err: err}
	}

	return nil
}

// decodePath pulls the failing field out of a stdlib decode error, when the
// error carries one.
func decodePath(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
