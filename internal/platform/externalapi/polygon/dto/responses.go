// Package dto defines data transfer objects for the Polygon API responses.
package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Envelope holds the fields every Polygon response may carry.
// It is decoded first to classify the response before the typed payload.
type Envelope struct {
	Status       string            `json:"status"`
	Message      string            `json:"message,omitempty"`
	Error        string            `json:"error,omitempty"`
	RequestID    string            `json:"request_id,omitempty"`
	ResultsCount int               `json:"resultsCount"`
	Results      []json.RawMessage `json:"results"`
}

// Bar is one aggregate result. T is only present in grouped-daily and previous-close results.
// vw and n are optional upstream, hence pointers.
type Bar struct {
	Ticker       string           `json:"T,omitempty"`
	Open         decimal.Decimal  `json:"o"`
	High         decimal.Decimal  `json:"h"`
	Low          decimal.Decimal  `json:"l"`
	Close        decimal.Decimal  `json:"c"`
	Volume       decimal.Decimal  `json:"v"`
	VWPrice      *decimal.Decimal `json:"vw,omitempty"`
	Transactions *decimal.Decimal `json:"n,omitempty"` // int, sometimes sent as float
	Timestamp    int64            `json:"t"`           // Unix timestamp in milliseconds
}

// AggregatesResponse is the body of the aggregates, grouped-daily and previous-close endpoints.
type AggregatesResponse struct {
	Ticker       string `json:"ticker,omitempty"`
	Adjusted     bool   `json:"adjusted"`
	QueryCount   int    `json:"queryCount"`
	ResultsCount int    `json:"resultsCount"`
	Results      []Bar  `json:"results"`
	Status       string `json:"status"`
	RequestID    string `json:"request_id"`
}

// OpenCloseResponse is the body of the stock/option daily open-close endpoint.
type OpenCloseResponse struct {
	Status     string          `json:"status"`
	From       string          `json:"from"`
	Symbol     string          `json:"symbol"`
	Open       decimal.Decimal `json:"open"`
	High       decimal.Decimal `json:"high"`
	Low        decimal.Decimal `json:"low"`
	Close      decimal.Decimal `json:"close"`
	AfterHours decimal.Decimal `json:"afterHours"`
	PreMarket  decimal.Decimal `json:"preMarket"`
	Volume     decimal.Decimal `json:"volume"`
}

// CryptoOpenCloseResponse is the body of the crypto daily open-close endpoint.
// Successful responses may omit status.
type CryptoOpenCloseResponse struct {
	Status        string          `json:"status,omitempty"`
	Symbol        string          `json:"symbol"`
	IsUTC         bool            `json:"isUTC"`
	Day           string          `json:"day"`
	Open          decimal.Decimal `json:"open"`
	Close         decimal.Decimal `json:"close"`
	OpenTrades    []CryptoTrade   `json:"openTrades"`
	ClosingTrades []CryptoTrade   `json:"closingTrades"`
}

// CryptoTrade is one trade of the crypto open-close payload.
type CryptoTrade struct {
	Size       decimal.Decimal `json:"s"`
	Price      decimal.Decimal `json:"p"`
	Exchange   FlexibleID      `json:"x"`
	Timestamp  int64           `json:"t"`
	Conditions []int           `json:"c"`
	ID         string          `json:"i,omitempty"`
}

// FlexibleID decodes an identifier sent either as a JSON number or a JSON string.
type FlexibleID string

// UnmarshalJSON accepts 1, 1.0 and "1".
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexibleID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexibleID(num.String())
		return nil
	}
	return fmt.Errorf("cannot parse identifier: %s", string(data))
}

func (f FlexibleID) String() string {
	return string(f)
}
