package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

// PairTicker builds the identifier of a currency pair within a category.
// The upstream expects the "to" currency first: to=USD, from=BTC gives "X:USDBTC".
func PairTicker(c entity.Category, p entity.CurrencyPair) string {
	return c.Marker + p.To + p.From
}

// OptionTicker builds the identifier of an option contract,
// e.g. AAPL 2024-06-21 CALL 150.5 gives "O:AAPL240621C00150500".
// The contract must have passed validation.
func OptionTicker(c entity.OptionContract) string {
	expiration := strings.ReplaceAll(c.Expiration[2:], "-", "")
	// three implied decimal places
	strike := decimal.NewFromFloat(c.Strike).Shift(3).IntPart()
	return fmt.Sprintf("%s%s%s%s%08d", entity.Options.Marker, c.Underlying, expiration, c.Type.Code(), strike)
}
