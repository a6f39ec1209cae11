// Package entity defines the domain models for the marketdata feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unavailable marks an optional numeric field the upstream did not supply.
// It is distinct from a legitimate zero.
const Unavailable = -1

// UnavailablePrice is the decimal form of Unavailable.
var UnavailablePrice = decimal.NewFromInt(Unavailable)

// AggregateBar is one OHLCV summary over a single time bucket.
type AggregateBar struct {
	Open         decimal.Decimal
	High         decimal.Decimal
	Low          decimal.Decimal
	Close        decimal.Decimal
	Volume       decimal.Decimal // may be fractional (crypto, forex)
	Transactions int64           // Unavailable when the upstream omits it
	Time         time.Time       // start of the bucket, UTC
	VWPrice      decimal.Decimal // volume weighted price, UnavailablePrice when omitted
}

// HasTransactions reports whether the upstream supplied a transaction count.
func (b AggregateBar) HasTransactions() bool {
	return b.Transactions != Unavailable
}

// HasVWPrice reports whether the upstream supplied a volume weighted price.
func (b AggregateBar) HasVWPrice() bool {
	return !b.VWPrice.Equal(UnavailablePrice)
}

// GroupedDailyBar is an AggregateBar for one ticker of a whole-market daily query.
type GroupedDailyBar struct {
	AggregateBar
	Ticker string
}

// PreviousClose is the previous trading day's bar for a single identifier.
// Ticker is empty for categories whose previous-close shape has no ticker.
type PreviousClose struct {
	AggregateBar
	Ticker string
}

// OpenClose summarizes a single trading day for a stock or option contract.
type OpenClose struct {
	Open       decimal.Decimal
	High       decimal.Decimal
	Low        decimal.Decimal
	Close      decimal.Decimal
	AfterHours decimal.Decimal
	PreMarket  decimal.Decimal
	Volume     int64
}

// CryptoTrade is one opening or closing trade of a crypto trading day.
type CryptoTrade struct {
	Conditions []int
	Price      decimal.Decimal
	Volume     decimal.Decimal
	Time       time.Time
	ExchangeID string
}

// CryptoOpenClose is the crypto variant of a daily open/close.
type CryptoOpenClose struct {
	Open          decimal.Decimal
	Close         decimal.Decimal
	OpeningTrades []CryptoTrade
	ClosingTrades []CryptoTrade
}
