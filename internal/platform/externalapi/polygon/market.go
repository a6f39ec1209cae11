package polygon

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/platform/externalapi/polygon/dto"
)

const noPreviousClose = "no previous close, perhaps the identifier is incorrect"

func adjustedQuery(adjusted bool) url.Values {
	q := url.Values{}
	q.Set("adjusted", strconv.FormatBool(adjusted))
	return q
}

// Aggregates fetches the bars of q.Ticker over q.Window.
func (m *PolygonMarket) Aggregates(ctx context.Context, q entity.AggregatesQuery) ([]entity.AggregateBar, error) {
	w := q.Window
	query := adjustedQuery(w.Adjusted)
	query.Set("sort", w.Sort.Token())
	query.Set("limit", strconv.Itoa(w.Limit))

	var body dto.AggregatesResponse
	err := m.get(ctx, call{
		path: fmt.Sprintf("/v2/aggs/ticker/%s/range/%d/%s/%s/%s",
			url.PathEscape(q.Ticker), w.Multiplier, w.Timespan.Token(), url.PathEscape(w.From), url.PathEscape(w.To)),
		query:      query,
		identifier: q.Ticker,
		vars:       map[string]string{"from": w.From, "to": w.To},
		emptyDetail: fmt.Sprintf("nothing from %s to %s within %d %s query limit, perhaps the market was not open or 'limit' is too small",
			w.From, w.To, w.Limit, w.Timespan),
	}, &body)
	if err != nil {
		return nil, err
	}
	return toAggregateBars(body.Results), nil
}

// DailyOpenClose fetches the open, close and extended-hours prices of a stock or option on q.Date.
func (m *PolygonMarket) DailyOpenClose(ctx context.Context, q entity.OpenCloseQuery) (entity.OpenClose, error) {
	var body dto.OpenCloseResponse
	err := m.get(ctx, call{
		path:       fmt.Sprintf("/v1/open-close/%s/%s", url.PathEscape(q.Ticker), url.PathEscape(q.Date)),
		query:      adjustedQuery(q.Adjusted),
		identifier: q.Ticker,
		vars:       map[string]string{"date": q.Date},
	}, &body)
	if err != nil {
		return entity.OpenClose{}, err
	}
	return toOpenClose(body), nil
}

// CryptoDailyOpenClose fetches the open and close of a currency pair on q.Date with the trades that set them.
func (m *PolygonMarket) CryptoDailyOpenClose(ctx context.Context, q entity.CryptoOpenCloseQuery) (entity.CryptoOpenClose, error) {
	var body dto.CryptoOpenCloseResponse
	err := m.get(ctx, call{
		path: fmt.Sprintf("/v1/open-close/crypto/%s/%s/%s",
			url.PathEscape(q.Pair.To), url.PathEscape(q.Pair.From), url.PathEscape(q.Date)),
		query:          adjustedQuery(q.Adjusted),
		identifier:     q.Ticker,
		vars:           map[string]string{"date": q.Date},
		statusOptional: true,
	}, &body)
	if err != nil {
		return entity.CryptoOpenClose{}, err
	}
	return toCryptoOpenClose(body), nil
}

// GroupedDaily fetches the daily bar of every instrument of q.Category on q.Date.
func (m *PolygonMarket) GroupedDaily(ctx context.Context, q entity.GroupedDailyQuery) ([]entity.GroupedDailyBar, error) {
	if !q.Category.HasGroupedDaily() {
		return nil, fmt.Errorf("polygon: no grouped daily endpoint for %s", q.Category.Name)
	}

	var body dto.AggregatesResponse
	err := m.get(ctx, call{
		path: fmt.Sprintf("/v2/aggs/grouped/locale/%s/market/%s/%s",
			q.Category.GroupedLocale, q.Category.GroupedMarket, url.PathEscape(q.Date)),
		query:       adjustedQuery(q.Adjusted),
		identifier:  q.Category.Name,
		vars:        map[string]string{"date": q.Date},
		emptyDetail: "nothing on " + q.Date + ", perhaps the market was not open",
	}, &body)
	if err != nil {
		return nil, err
	}
	return toGroupedDailyBars(q.Category, body.Results), nil
}

// PreviousClose fetches the previous trading day's bar of q.Ticker.
func (m *PolygonMarket) PreviousClose(ctx context.Context, q entity.PreviousCloseQuery) (entity.PreviousClose, error) {
	var body dto.AggregatesResponse
	err := m.get(ctx, call{
		path:        fmt.Sprintf("/v2/aggs/ticker/%s/prev", url.PathEscape(q.Ticker)),
		query:       adjustedQuery(q.Adjusted),
		identifier:  q.Ticker,
		emptyDetail: noPreviousClose,
	}, &body)
	if err != nil {
		return entity.PreviousClose{}, err
	}
	if len(body.Results) == 0 {
		return entity.PreviousClose{}, &domain.NotFoundError{Identifier: q.Ticker, Detail: noPreviousClose}
	}
	return toPreviousClose(q.Category, body.Results[0]), nil
}
