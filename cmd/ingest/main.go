package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"market_gateway/internal/app/di"
	archiveusecase "market_gateway/internal/feature/archive/usecase"
	mdusecase "market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/externalapi/polygon"
	"market_gateway/internal/platform/logger"
	"market_gateway/internal/shared/ratelimiter"
)

func main() {
	envErr := godotenv.Load(".env")
	l := logger.Setup()
	if envErr != nil {
		l.Info(".env not found; using system environment variables")
	}

	if err := run(); err != nil {
		slog.Error("archive failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := archiveusecase.LoadConfig(time.Now())
	if err != nil {
		return err
	}

	gdb, err := di.OpenArchiveDB(cfg)
	if err != nil {
		return err
	}
	sink, err := di.NewArchiveSink(cfg, gdb)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tickers, err := archiveusecase.ResolveTickers(ctx, cfg.Tickers, di.NewSymbolRepository(gdb))
	if err != nil {
		return err
	}

	stocks := mdusecase.NewStocksUsecase(di.NewMarket(polygon.LoadConfig()))
	limiter := ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute)
	uc := archiveusecase.NewArchiveUsecase(stocks, sink, limiter)

	slog.Info("archive starting",
		"tickers", len(tickers),
		"from", cfg.Window.From,
		"to", cfg.Window.To,
		"sink", cfg.Sink,
	)
	sum, err := uc.ArchiveAll(ctx, tickers, cfg.Window)
	slog.Info("archive finished",
		"succeeded", sum.Succeeded,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
	)
	return err
}
