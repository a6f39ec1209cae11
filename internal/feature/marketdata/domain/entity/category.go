package entity

// Category carries the per-market differences of the upstream API.
// Every pipeline step reads its quirks from here instead of branching on the name.
type Category struct {
	Name string

	// Marker prefixes identifiers built for this category ("X:", "C:", "O:")
	// and is stripped from tickers in grouped-daily results.
	Marker string

	// StripGroupedTicker enables marker stripping of grouped-daily tickers.
	StripGroupedTicker bool

	// GroupedLocale and GroupedMarket address the grouped-daily endpoint.
	// Both are empty when the category has no grouped-daily operation.
	GroupedLocale string
	GroupedMarket string

	// PreviousCloseTicker reports whether previous-close records carry a ticker.
	PreviousCloseTicker bool
}

// HasGroupedDaily reports whether the upstream offers a grouped-daily endpoint.
func (c Category) HasGroupedDaily() bool {
	return c.GroupedMarket != ""
}

var (
	Stocks = Category{
		Name:                "stocks",
		GroupedLocale:       "us",
		GroupedMarket:       "stocks",
		PreviousCloseTicker: true,
	}
	Options = Category{
		Name:   "options",
		Marker: "O:",
	}
	Forex = Category{
		Name:               "forex",
		Marker:             "C:",
		StripGroupedTicker: true,
		GroupedLocale:      "global",
		GroupedMarket:      "fx",
	}
	Crypto = Category{
		Name:                "crypto",
		Marker:              "X:",
		StripGroupedTicker:  true,
		GroupedLocale:       "global",
		GroupedMarket:       "crypto",
		PreviousCloseTicker: true,
	}
)
