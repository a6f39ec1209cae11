// Package usecase implements the historical bar archive job.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"market_gateway/internal/feature/archive/domain/entity"
	"market_gateway/internal/feature/marketdata/domain"
	mdentity "market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/shared/ratelimiter"
)

// BarSource fetches validated aggregate bars for a stock ticker.
// The marketdata StocksUsecase satisfies it.
type BarSource interface {
	Aggregates(ctx context.Context, ticker string, w mdentity.Window) ([]mdentity.AggregateBar, error)
}

// BarSink stores the bars of one ticker.
type BarSink interface {
	Store(ctx context.Context, ticker string, w mdentity.Window, records []entity.Record) error
}

// SymbolRepository lists the tickers to archive when none are configured.
type SymbolRepository interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// ArchiveUsecase copies aggregate bars from the upstream into a sink.
type ArchiveUsecase struct {
	source      BarSource
	sink        BarSink
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewArchiveUsecase creates an ArchiveUsecase.
func NewArchiveUsecase(source BarSource, sink BarSink, rateLimiter ratelimiter.RateLimiterInterface) *ArchiveUsecase {
	return &ArchiveUsecase{source: source, sink: sink, rateLimiter: rateLimiter}
}

// ResolveTickers returns configured when non-empty, otherwise the active symbols.
func ResolveTickers(ctx context.Context, configured []string, symbols SymbolRepository) ([]string, error) {
	if len(configured) > 0 {
		return configured, nil
	}
	if symbols == nil {
		return nil, errors.New("no tickers configured and no symbol repository")
	}
	codes, err := symbols.ListActiveCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active symbols: %w", err)
	}
	return codes, nil
}

func (u *ArchiveUsecase) archiveOne(ctx context.Context, ticker string, w mdentity.Window) error {
	bars, err := u.source.Aggregates(ctx, ticker, w)
	if err != nil {
		return err
	}

	records := make([]entity.Record, 0, len(bars))
	for _, b := range bars {
		records = append(records, entity.Record{Ticker: ticker, Timespan: w.Timespan, AggregateBar: b})
	}
	return u.sink.Store(ctx, ticker, w, records)
}

// ArchiveAll archives every ticker over w. A failing ticker is logged and the
// run continues; only cancellation of ctx stops it early.
func (u *ArchiveUsecase) ArchiveAll(ctx context.Context, tickers []string, w mdentity.Window) (entity.Summary, error) {
	var sum entity.Summary
	for _, t := range tickers {
		if err := u.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return sum, err
		}

		err := u.archiveOne(ctx, t, w)
		switch {
		case err == nil:
			sum.Succeeded++
		case errors.Is(err, domain.ErrNotFound):
			slog.Info("no bars to archive", "ticker", t, "from", w.From, "to", w.To)
			sum.Skipped++
		case ctx.Err() != nil:
			return sum, ctx.Err()
		default:
			slog.Error("failed to archive bars", "ticker", t, "error", err)
			sum.Failed++
		}
	}
	return sum, nil
}
