package bdsapi

import "encoding/json"

// RawJSON holds a JSON fragment whose internal structure is not part of the
// upstream contract. Callers must not assume anything about its shape; it
// round-trips unchanged.
type RawJSON = json.RawMessage

// TokenMetadata describes a token: its address, name, symbol, and decimal
// precision. Address may be absent.
type TokenMetadata struct {
	Address  *string `json:"address"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Decimals Int64   `json:"decimals"`
}

// Epoch is a block range for which a snapshot was taken. EpochID is present
// on current-epoch responses but absent elsewhere.
type Epoch struct {
	Begin   Int64  `json:"begin"`
	End     Int64  `json:"end"`
	EpochID *Int64 `json:"epochId"`
}

// Log is a blockchain event log attached to a trade.
type Log struct {
	Address          string   `json:"address"`
	BlockNumber      Int64    `json:"blockNumber"`
	Data             string   `json:"data"`
	EventName        string   `json:"eventName"`
	FilterName       string   `json:"filterName"`
	LogIndex         Int64    `json:"logIndex"`
	Topics           []string `json:"topics"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex Int64    `json:"transactionIndex"`
}

// TradeData holds the computed values for a single trade.
type TradeData struct {
	Amount0                  Float64 `json:"amount0"`
	Amount1                  Float64 `json:"amount1"`
	BlockTimestamp           Int64   `json:"block_timestamp"`
	CalculatedEthPrice       Float64 `json:"calculated_eth_price"`
	CalculatedToken0Amount   Float64 `json:"calculated_token0_amount"`
	CalculatedToken1Amount   Float64 `json:"calculated_token1_amount"`
	CalculatedTradeAmountUSD Float64 `json:"calculated_trade_amount_usd"`
	Liquidity                BigInt  `json:"liquidity"`
	Recipient                string  `json:"recipient"`
	Sender                   string  `json:"sender"`
	SqrtPriceX96             BigInt  `json:"sqrtPriceX96"`
	Tick                     Int64   `json:"tick"`
}

// Trade combines the raw event log with the computed trade data.
type Trade struct {
	TradeType string    `json:"tradeType"`
	Log       Log       `json:"log"`
	Data      TradeData `json:"data"`
}

// Pagination accompanies list-style responses.
type Pagination struct {
	Page       Int64 `json:"page"`
	Size       Int64 `json:"size"`
	Total      Int64 `json:"total"`
	TotalPages Int64 `json:"total_pages"`
}

// PoolMetadata describes a liquidity pool: its token pair, fee tier, and the
// factory that created it.
type PoolMetadata struct {
	Address string        `json:"address"`
	Token0  TokenMetadata `json:"token0"`
	Token1  TokenMetadata `json:"token1"`
	Fee     Int64         `json:"fee"`
	Factory string        `json:"factory"`
}

// TokenPools maps pool addresses to pool metadata for every pool containing
// a token.
type TokenPools struct {
	Pools map[string]PoolMetadata `json:"pools"`
}

// EthPrice is the ETH price snapshot for an epoch. The ethPrice map is keyed
// by opaque timestamp identifiers.
type EthPrice struct {
	Epoch             Epoch              `json:"epoch"`
	EthPrice          map[string]Float64 `json:"ethPrice"`
	PreviousSnapshots []RawJSON          `json:"previousSnapshots"`
}

// TokenBaseSnapshots maps pool addresses to per-pool snapshot payloads whose
// shape is not contractually fixed.
type TokenBaseSnapshots map[string]RawJSON

// BaseSnapshot is the full pool snapshot for an epoch: reserves, prices, and
// volumes in native and USD units. All per-timestamp maps are keyed by the
// same opaque identifiers as the timestamps map.
type BaseSnapshot struct {
	Address                 string             `json:"address"`
	Epoch                   Epoch              `json:"epoch"`
	Timestamps              map[string]Int64   `json:"timestamps"`
	Token0                  string             `json:"token0"`
	Token1                  string             `json:"token1"`
	Token0Reserves          map[string]Float64 `json:"token0Reserves"`
	Token1Reserves          map[string]Float64 `json:"token1Reserves"`
	Token0ReservesUSD       map[string]Float64 `json:"token0ReservesUSD"`
	Token1ReservesUSD       map[string]Float64 `json:"token1ReservesUSD"`
	Token0Prices            map[string]Float64 `json:"token0Prices"`
	Token1Prices            map[string]Float64 `json:"token1Prices"`
	Token0PricesUSD         map[string]Float64 `json:"token0PricesUSD"`
	Token1PricesUSD         map[string]Float64 `json:"token1PricesUSD"`
	TotalTrade              Float64            `json:"totalTrade"`
	TotalTradeMintBurn      Float64            `json:"totalTradeMintBurn"`
	TotalFee                Float64            `json:"totalFee"`
	Token0MintBurnVolume    Float64            `json:"token0MintBurnVolume"`
	Token1MintBurnVolume    Float64            `json:"token1MintBurnVolume"`
	Token0MintBurnVolumeUSD Float64            `json:"token0MintBurnVolumeUSD"`
	Token1MintBurnVolumeUSD Float64            `json:"token1MintBurnVolumeUSD"`
	Token0TradeVolume       Float64            `json:"token0TradeVolume"`
	Token1TradeVolume       Float64            `json:"token1TradeVolume"`
	Token0TradeVolumeUSD    Float64            `json:"token0TradeVolumeUSD"`
	Token1TradeVolumeUSD    Float64            `json:"token1TradeVolumeUSD"`
	PreviousSnapshots       []RawJSON          `json:"previousSnapshots"`
}

// TradesSnapshot holds every trade that occurred in one pool during an epoch.
type TradesSnapshot struct {
	Address           string    `json:"address"`
	Epoch             Epoch     `json:"epoch"`
	Trades            []Trade   `json:"trades"`
	PreviousSnapshots []RawJSON `json:"previousSnapshots"`
}

// AllTradesSnapshot maps pool addresses to their trades snapshots for one
// epoch.
type AllTradesSnapshot struct {
	Epoch             Epoch                     `json:"epoch"`
	TradeData         map[string]TradesSnapshot `json:"tradeData"`
	PreviousSnapshots []RawJSON                 `json:"previousSnapshots"`
}

// TokenPriceAll maps pool addresses to a token's price in that pool. The
// price is null for pools without price data.
type TokenPriceAll map[string]*Float64

// TradeVolume is the aggregated trade volume over a time interval.
type TradeVolume struct {
	TotalTradeVolume Float64 `json:"totalTradeVolume"`
	TimeInterval     Int64   `json:"timeInterval"`
}

// PoolTrades is a list of raw trade records whose shape is not contractually
// fixed.
type PoolTrades []RawJSON

// PriceSeriesEntry is a single point in a token price series.
type PriceSeriesEntry struct {
	BlockNumber Int64   `json:"blockNumber"`
	Price       Float64 `json:"price"`
	Timestamp   Int64   `json:"timestamp"`
}

// TokenPriceSeries is a chronologically ordered series of price points.
type TokenPriceSeries struct {
	PriceSeries  []PriceSeriesEntry `json:"priceSeries"`
	TimeInterval Int64              `json:"timeInterval"`
}

// ActiveToken is a token that had trading activity during a period.
type ActiveToken struct {
	TokenAddress string        `json:"token_address"`
	Frequency    Int64         `json:"frequency"`
	Metadata     TokenMetadata `json:"metadata"`
}

// DailyActiveTokens is a paginated list of active tokens.
type DailyActiveTokens struct {
	ActiveTokens []ActiveToken `json:"active_tokens"`
	Pagination   Pagination    `json:"pagination"`
}

// ActivePool is a pool that had trading activity during a period.
type ActivePool struct {
	PoolAddress string       `json:"pool_address"`
	Frequency   Int64        `json:"frequency"`
	Metadata    PoolMetadata `json:"metadata"`
}

// DailyActivePools is a paginated list of active pools.
type DailyActivePools struct {
	ActivePools []ActivePool `json:"active_pools"`
	Pagination  Pagination   `json:"pagination"`
}

// Health is the upstream health-check response.
type Health struct {
	Status string `json:"status"`
}

// CurrentEpoch describes the currently active epoch.
type CurrentEpoch struct {
	Begin   Int64 `json:"begin"`
	End     Int64 `json:"end"`
	EpochID Int64 `json:"epochId"`
}

// EpochInfo describes a specific epoch. The upstream spells the block field
// "blocknumber" here, unlike the camelCased fields elsewhere.
type EpochInfo struct {
	Timestamp   Int64 `json:"timestamp"`
	BlockNumber Int64 `json:"blocknumber"`
	EpochEnd    Int64 `json:"epochEnd"`
}

// ProjectLastFinalizedEpoch describes the most recently finalized epoch for a
// project.
type ProjectLastFinalizedEpoch struct {
	EpochID     Int64 `json:"epochId"`
	Timestamp   Int64 `json:"timestamp"`
	BlockNumber Int64 `json:"blocknumber"`
	EpochEnd    Int64 `json:"epochEnd"`
}

// ProjectEpochData is the finalized payload for a project and epoch. It
// carries the same shape as BaseSnapshot.
type ProjectEpochData = BaseSnapshot
