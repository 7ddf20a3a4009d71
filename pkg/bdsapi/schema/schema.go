// Package schema is the registry of upstream response shapes. Every endpoint
// has a declared schema that a JSON body must match before a typed value is
// returned to the caller.
//
// Validation is structural: required fields must be present with the right
// type, extra undeclared fields are accepted, and numeric fields also accept
// numeric strings, matching the upstream's own lenient validator. Fields
// whose internal shape is not contractually fixed (previousSnapshots, raw
// trade records, per-pool snapshot payloads) are declared as opaque values.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Resolved is a compiled schema ready for validation.
type Resolved = jsonschema.Resolved

// Validate decodes raw and checks it against the resolved schema. The
// returned error identifies the failing location.
func Validate(res *Resolved, raw []byte) error {
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("parse body: %w", err)
	}

	return res.Validate(instance)
}

// Response schemas, resolved once at package load. Sub-schemas are built
// fresh per root so each root owns its tree. A schema that fails to resolve
// is a programming error.
var (
	PoolMetadata              = must(poolMetadata())
	TokenPools                = must(object(req("pools"), props{"pools": mapOf(poolMetadata())}))
	EthPrice                  = must(ethPrice())
	TokenBaseSnapshots        = must(mapOf(anyValue()))
	BaseSnapshot              = must(baseSnapshot())
	TradesSnapshot            = must(tradesSnapshot())
	AllTradesSnapshot         = must(allTradesSnapshot())
	TokenPriceAll             = must(mapOf(nullableNumber()))
	TokenPricePool            = must(&jsonschema.Schema{Type: "number"})
	TradeVolume               = must(tradeVolume())
	PoolTrades                = must(listOf(&jsonschema.Schema{Type: "object"}))
	TokenPriceSeries          = must(tokenPriceSeries())
	DailyActiveTokens         = must(dailyActiveTokens())
	DailyActivePools          = must(dailyActivePools())
	Health                    = must(object(req("status"), props{"status": str()}))
	CurrentEpoch              = must(currentEpoch())
	EpochInfo                 = must(epochInfo())
	ProjectLastFinalizedEpoch = must(projectLastFinalizedEpoch())
	ProjectEpochData          = must(baseSnapshot())
	FinalizedCID              = must(str())
)

func tokenMetadata() *jsonschema.Schema {
	return object(
		req("name", "symbol", "decimals"),
		props{
			"address":  nullableString(),
			"name":     str(),
			"symbol":   str(),
			"decimals": integer(),
		},
	)
}

func epoch() *jsonschema.Schema {
	return object(
		req("begin", "end"),
		props{
			"begin":   integer(),
			"end":     integer(),
			"epochId": nullableInteger(),
		},
	)
}

func log() *jsonschema.Schema {
	return object(
		req("address", "blockNumber", "data", "eventName", "filterName",
			"logIndex", "topics", "transactionHash", "transactionIndex"),
		props{
			"address":          str(),
			"blockNumber":      integer(),
			"data":             str(),
			"eventName":        str(),
			"filterName":       str(),
			"logIndex":         integer(),
			"topics":           listOf(str()),
			"transactionHash":  str(),
			"transactionIndex": integer(),
		},
	)
}

func tradeData() *jsonschema.Schema {
	return object(
		req("amount0", "amount1", "block_timestamp", "calculated_eth_price",
			"calculated_token0_amount", "calculated_token1_amount",
			"calculated_trade_amount_usd", "liquidity", "recipient", "sender",
			"sqrtPriceX96", "tick"),
		props{
			"amount0":                     number(),
			"amount1":                     number(),
			"block_timestamp":             integer(),
			"calculated_eth_price":        number(),
			"calculated_token0_amount":    number(),
			"calculated_token1_amount":    number(),
			"calculated_trade_amount_usd": number(),
			"liquidity":                   integer(),
			"recipient":                   str(),
			"sender":                      str(),
			"sqrtPriceX96":                integer(),
			"tick":                        integer(),
		},
	)
}

func trade() *jsonschema.Schema {
	return object(
		req("tradeType", "log", "data"),
		props{
			"tradeType": str(),
			"log":       log(),
			"data":      tradeData(),
		},
	)
}

func pagination() *jsonschema.Schema {
	return object(
		req("page", "size", "total", "total_pages"),
		props{
			"page":        integer(),
			"size":        integer(),
			"total":       integer(),
			"total_pages": integer(),
		},
	)
}

func poolMetadata() *jsonschema.Schema {
	return object(
		req("address", "token0", "token1", "fee", "factory"),
		props{
			"address": str(),
			"token0":  tokenMetadata(),
			"token1":  tokenMetadata(),
			"fee":     integer(),
			"factory": str(),
		},
	)
}

func ethPrice() *jsonschema.Schema {
	return object(
		req("epoch", "ethPrice", "previousSnapshots"),
		props{
			"epoch":             epoch(),
			"ethPrice":          mapOf(number()),
			"previousSnapshots": listOf(anyValue()),
		},
	)
}

func baseSnapshot() *jsonschema.Schema {
	return object(
		req("address", "epoch", "timestamps", "token0", "token1",
			"token0Reserves", "token1Reserves", "token0ReservesUSD", "token1ReservesUSD",
			"token0Prices", "token1Prices", "token0PricesUSD", "token1PricesUSD",
			"totalTrade", "totalTradeMintBurn", "totalFee",
			"token0MintBurnVolume", "token1MintBurnVolume",
			"token0MintBurnVolumeUSD", "token1MintBurnVolumeUSD",
			"token0TradeVolume", "token1TradeVolume",
			"token0TradeVolumeUSD", "token1TradeVolumeUSD", "previousSnapshots"),
		props{
			"address":                 str(),
			"epoch":                   epoch(),
			"timestamps":              mapOf(integer()),
			"token0":                  str(),
			"token1":                  str(),
			"token0Reserves":          mapOf(number()),
			"token1Reserves":          mapOf(number()),
			"token0ReservesUSD":       mapOf(number()),
			"token1ReservesUSD":       mapOf(number()),
			"token0Prices":            mapOf(number()),
			"token1Prices":            mapOf(number()),
			"token0PricesUSD":         mapOf(number()),
			"token1PricesUSD":         mapOf(number()),
			"totalTrade":              number(),
			"totalTradeMintBurn":      number(),
			"totalFee":                number(),
			"token0MintBurnVolume":    number(),
			"token1MintBurnVolume":    number(),
			"token0MintBurnVolumeUSD": number(),
			"token1MintBurnVolumeUSD": number(),
			"token0TradeVolume":       number(),
			"token1TradeVolume":       number(),
			"token0TradeVolumeUSD":    number(),
			"token1TradeVolumeUSD":    number(),
			"previousSnapshots":       listOf(anyValue()),
		},
	)
}

func tradesSnapshot() *jsonschema.Schema {
	return object(
		req("address", "epoch", "trades", "previousSnapshots"),
		props{
			"address":           str(),
			"epoch":             epoch(),
			"trades":            listOf(trade()),
			"previousSnapshots": listOf(anyValue()),
		},
	)
}

func allTradesSnapshot() *jsonschema.Schema {
	return object(
		req("epoch", "tradeData", "previousSnapshots"),
		props{
			"epoch":             epoch(),
			"tradeData":         mapOf(tradesSnapshot()),
			"previousSnapshots": listOf(anyValue()),
		},
	)
}

func tradeVolume() *jsonschema.Schema {
	return object(
		req("totalTradeVolume", "timeInterval"),
		props{
			"totalTradeVolume": number(),
			"timeInterval":     integer(),
		},
	)
}

func tokenPriceSeries() *jsonschema.Schema {
	return object(
		req("priceSeries", "timeInterval"),
		props{
			"priceSeries": listOf(object(
				req("blockNumber", "price", "timestamp"),
				props{
					"blockNumber": integer(),
					"price":       number(),
					"timestamp":   integer(),
				},
			)),
			"timeInterval": integer(),
		},
	)
}

func dailyActiveTokens() *jsonschema.Schema {
	return object(
		req("active_tokens", "pagination"),
		props{
			"active_tokens": listOf(object(
				req("token_address", "frequency", "metadata"),
				props{
					"token_address": str(),
					"frequency":     integer(),
					"metadata":      tokenMetadata(),
				},
			)),
			"pagination": pagination(),
		},
	)
}

func dailyActivePools() *jsonschema.Schema {
	return object(
		req("active_pools", "pagination"),
		props{
			"active_pools": listOf(object(
				req("pool_address", "frequency", "metadata"),
				props{
					"pool_address": str(),
					"frequency":    integer(),
					"metadata":     poolMetadata(),
				},
			)),
			"pagination": pagination(),
		},
	)
}

func currentEpoch() *jsonschema.Schema {
	return object(
		req("begin", "end", "epochId"),
		props{
			"begin":   integer(),
			"end":     integer(),
			"epochId": integer(),
		},
	)
}

func epochInfo() *jsonschema.Schema {
	return object(
		req("timestamp", "blocknumber", "epochEnd"),
		props{
			"timestamp":   integer(),
			"blocknumber": integer(),
			"epochEnd":    integer(),
		},
	)
}

func projectLastFinalizedEpoch() *jsonschema.Schema {
	return object(
		req("epochId", "timestamp", "blocknumber", "epochEnd"),
		props{
			"epochId":     integer(),
			"timestamp":   integer(),
			"blocknumber": integer(),
			"epochEnd":    integer(),
		},
	)
}

// --- declaration helpers ---

type props = map[string]*jsonschema.Schema

func req(names ...string) []string { return names }

func object(required []string, properties props) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func mapOf(value *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: value,
	}
}

func listOf(items *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: items,
	}
}

func str() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

// number and integer accept numeric strings alongside JSON numbers; the
// upstream occasionally string-encodes large or precise values.
func number() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"number", "string"}}
}

func integer() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"integer", "string"}}
}

func nullableNumber() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"number", "string", "null"}}
}

func nullableInteger() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"integer", "string", "null"}}
}

func nullableString() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"string", "null"}}
}

// anyValue matches any JSON value. Used for payloads whose shape is
// deliberately left opaque.
func anyValue() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

func must(s *jsonschema.Schema) *Resolved {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("schema: resolve: %v", err))
	}

	return resolved
}
