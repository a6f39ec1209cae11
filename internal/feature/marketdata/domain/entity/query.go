package entity

// CurrencyPair names a forex or crypto exchange rate.
type CurrencyPair struct {
	From string // currency exchanged from, case-sensitive
	To   string // currency exchanged to, case-sensitive
}

// OptionContract identifies a single listed option.
type OptionContract struct {
	Underlying string     // ticker of the underlying stock
	Expiration string     // YYYY-MM-DD
	Type       OptionType // call or put
	Strike     float64    // strike price in dollars
}

// Window is the time range and shape of an aggregates query.
type Window struct {
	Multiplier int
	Timespan   Timespan
	From       string // YYYY-MM-DD
	To         string // YYYY-MM-DD
	Adjusted   bool
	Sort       SortOrder
	Limit      int
}

// AggregatesQuery is a validated aggregates request for one identifier.
type AggregatesQuery struct {
	Category Category
	Ticker   string
	Window   Window
}

// OpenCloseQuery is a validated daily open/close request for a stock or option.
type OpenCloseQuery struct {
	Category Category
	Ticker   string
	Date     string
	Adjusted bool
}

// CryptoOpenCloseQuery is a validated crypto daily open/close request.
// The upstream addresses it by pair rather than by identifier.
type CryptoOpenCloseQuery struct {
	Pair     CurrencyPair
	Ticker   string
	Date     string
	Adjusted bool
}

// GroupedDailyQuery is a validated whole-market daily request.
type GroupedDailyQuery struct {
	Category Category
	Date     string
	Adjusted bool
}

// PreviousCloseQuery is a validated previous-close request.
type PreviousCloseQuery struct {
	Category Category
	Ticker   string
	Adjusted bool
}
