package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedTrade is one published row: all executions sharing one
// millisecond timestamp folded into a total amount and an unweighted mean
// price.
type AggregatedTrade struct {
	TradedAt time.Time
	Amount   decimal.Decimal
	Price    decimal.Decimal
}

// BatchParams describes one bounded aggregation batch.
type BatchParams struct {
	// SourceTable is the raw execution table joined against.
	SourceTable string
	// IndexTable is the timestamp work queue consumed from.
	IndexTable string
	// StagingTable is the result table aggregates are inserted into.
	StagingTable string
	// Limit bounds the number of timestamps processed in this batch.
	Limit int
}
