package main

import (
	"os"

	"github.com/joho/godotenv"

	"market_gateway/internal/app/di"
	"market_gateway/internal/app/router"
	"market_gateway/internal/platform/externalapi/polygon"
	platformhandler "market_gateway/internal/platform/http/handler"
	"market_gateway/internal/platform/logger"
)

func main() {
	envErr := godotenv.Load(".env")
	l := logger.Setup()
	if envErr != nil {
		l.Info(".env not found; using system environment variables")
	}

	polygonCfg := polygon.LoadConfig()
	if polygonCfg.APIKey == "" {
		l.Warn("POLYGON_API_KEY is not set; upstream calls will be rejected")
	}

	// Repository
	market := di.NewMarket(polygonCfg)

	// Usecase + Handler
	handlers := di.NewHandlers(market, map[string]platformhandler.Check{
		"polygon_api_key": di.APIKeyCheck(polygonCfg),
	})

	cfg := router.LoadConfig()
	r := router.NewRouter(cfg, l, handlers)

	l.Info("server starting", "addr", cfg.Addr(), "upstream", polygonCfg.BaseURL)
	if err := r.Run(cfg.Addr()); err != nil {
		l.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
