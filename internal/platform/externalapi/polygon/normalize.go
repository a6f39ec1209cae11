package polygon

import (
	"strings"
	"time"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/platform/externalapi/polygon/dto"
)

// toTime converts an upstream millisecond epoch to a UTC time.
func toTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func toAggregateBar(b dto.Bar) entity.AggregateBar {
	bar := entity.AggregateBar{
		Open:         b.Open,
		High:         b.High,
		Low:          b.Low,
		Close:        b.Close,
		Volume:       b.Volume,
		Transactions: entity.Unavailable,
		Time:         toTime(b.Timestamp),
		VWPrice:      entity.UnavailablePrice,
	}
	if b.Transactions != nil {
		bar.Transactions = b.Transactions.IntPart()
	}
	if b.VWPrice != nil {
		bar.VWPrice = *b.VWPrice
	}
	return bar
}

func toAggregateBars(bars []dto.Bar) []entity.AggregateBar {
	out := make([]entity.AggregateBar, 0, len(bars))
	for _, b := range bars {
		out = append(out, toAggregateBar(b))
	}
	return out
}

// groupedTicker removes the category marker from a grouped-daily ticker.
// Tickers without the marker pass through unchanged.
func groupedTicker(c entity.Category, ticker string) string {
	if !c.StripGroupedTicker || c.Marker == "" {
		return ticker
	}
	return strings.TrimPrefix(ticker, c.Marker)
}

func toGroupedDailyBars(c entity.Category, bars []dto.Bar) []entity.GroupedDailyBar {
	out := make([]entity.GroupedDailyBar, 0, len(bars))
	for _, b := range bars {
		out = append(out, entity.GroupedDailyBar{
			AggregateBar: toAggregateBar(b),
			Ticker:       groupedTicker(c, b.Ticker),
		})
	}
	return out
}

func toPreviousClose(c entity.Category, b dto.Bar) entity.PreviousClose {
	pc := entity.PreviousClose{AggregateBar: toAggregateBar(b)}
	if c.PreviousCloseTicker {
		pc.Ticker = b.Ticker
	}
	return pc
}

func toOpenClose(r dto.OpenCloseResponse) entity.OpenClose {
	return entity.OpenClose{
		Open:       r.Open,
		High:       r.High,
		Low:        r.Low,
		Close:      r.Close,
		AfterHours: r.AfterHours,
		PreMarket:  r.PreMarket,
		Volume:     r.Volume.IntPart(),
	}
}

func toCryptoTrades(trades []dto.CryptoTrade) []entity.CryptoTrade {
	out := make([]entity.CryptoTrade, 0, len(trades))
	for _, t := range trades {
		out = append(out, entity.CryptoTrade{
			Conditions: t.Conditions,
			Price:      t.Price,
			Volume:     t.Size,
			Time:       toTime(t.Timestamp),
			ExchangeID: t.Exchange.String(),
		})
	}
	return out
}

func toCryptoOpenClose(r dto.CryptoOpenCloseResponse) entity.CryptoOpenClose {
	return entity.CryptoOpenClose{
		Open:          r.Open,
		Close:         r.Close,
		OpeningTrades: toCryptoTrades(r.OpenTrades),
		ClosingTrades: toCryptoTrades(r.ClosingTrades),
	}
}
