package usecase

import (
	"math"
	"strings"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
)

const (
	// MaxLimit is the largest number of base aggregates the upstream accepts.
	MaxLimit = 50000
	// MaxStrike is the largest strike an option identifier can encode.
	MaxStrike = 99999.999

	separator = "/"
)

// firstInvalid returns the first non-nil check result.
// Checks are listed in the fixed order of the operation.
func firstInvalid(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkSymbol validates tickers and currency codes, which become URL path segments.
func checkSymbol(field, v string) error {
	if v == "" {
		return domain.NewValidationError(field, "should be non-empty")
	}
	if strings.Contains(v, separator) {
		return domain.NewValidationError(field, "should not include '/'")
	}
	return nil
}

// checkDate is a coarse YYYY-MM-DD shape check; the upstream does the calendar validation.
func checkDate(field, v string) error {
	noun := "date "
	if field == "date" {
		noun = ""
	}
	if v == "" {
		return domain.NewValidationError(field, noun+"should be non-empty")
	}
	if strings.Contains(v, separator) {
		return domain.NewValidationError(field, noun+"should not include '/'")
	}
	if !strings.Contains(v, "-") {
		return domain.NewValidationError(field, noun+"should be of format 'YYYY-MM-DD'")
	}
	return nil
}

func checkExpiration(v string) error {
	if err := checkDate("expiration", v); err != nil {
		return err
	}
	// option identifiers only carry a two digit year
	if !strings.HasPrefix(v, "20") {
		return domain.NewValidationError("expiration", "date should be in the 21st century")
	}
	return nil
}

func checkOptionType(v entity.OptionType) error {
	if !v.Valid() {
		return domain.NewValidationError("type", "should be 'CALL' or 'PUT'")
	}
	return nil
}

// checkStrike treats NaN as an unparsable price.
func checkStrike(v float64) error {
	if math.IsNaN(v) {
		return domain.NewValidationError("strike", "price should be a number")
	}
	if v < 0 {
		return domain.NewValidationError("strike", "price should be at least $0")
	}
	if v > MaxStrike {
		return domain.NewValidationError("strike", "price should be no more than $99999.999")
	}
	return nil
}

func checkMultiplier(v int) error {
	if v < 1 {
		return domain.NewValidationError("multiplier", "should be at least 1")
	}
	return nil
}

func checkTimespan(v entity.Timespan) error {
	if !v.Valid() {
		return domain.NewValidationError("timespan", "should be 'minute', 'hour', 'day', 'week', 'month', 'quarter', or 'year'")
	}
	return nil
}

func checkLimit(v int) error {
	if v < 1 {
		return domain.NewValidationError("limit", "should be at least 1")
	}
	if v > MaxLimit {
		return domain.NewValidationError("limit", "should be no more than 50000")
	}
	return nil
}

func checkPair(p entity.CurrencyPair) error {
	return firstInvalid(
		checkSymbol("currency_from", p.From),
		checkSymbol("currency_to", p.To),
	)
}

func checkContract(c entity.OptionContract) error {
	return firstInvalid(
		checkSymbol("ticker", c.Underlying),
		checkExpiration(c.Expiration),
		checkOptionType(c.Type),
		checkStrike(c.Strike),
	)
}

func checkWindow(w entity.Window) error {
	return firstInvalid(
		checkDate("from", w.From),
		checkDate("to", w.To),
		checkMultiplier(w.Multiplier),
		checkTimespan(w.Timespan),
		checkLimit(w.Limit),
	)
}
