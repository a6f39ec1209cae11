// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"

	"market_gateway/internal/app/router"
	"market_gateway/internal/feature/marketdata/transport/handler"
	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/externalapi/polygon"
	infrahttp "market_gateway/internal/platform/http"
	platformhandler "market_gateway/internal/platform/http/handler"
)

// NewMarket creates a fully configured PolygonMarket with HTTP client.
func NewMarket(cfg polygon.Config) *polygon.PolygonMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return polygon.NewPolygonMarket(cfg, httpClient)
}

// APIKeyCheck reports the server not ready while no upstream API key is configured.
func APIKeyCheck(cfg polygon.Config) platformhandler.Check {
	return func(context.Context) error {
		if cfg.APIKey == "" {
			return errors.New("POLYGON_API_KEY is not set")
		}
		return nil
	}
}

// NewHandlers wires the four category facades over market into router handlers.
func NewHandlers(market usecase.MarketRepository, checks map[string]platformhandler.Check) router.Handlers {
	return router.Handlers{
		Stocks:  handler.NewStocksHandler(usecase.NewStocksUsecase(market)),
		Options: handler.NewOptionsHandler(usecase.NewOptionsUsecase(market)),
		Forex:   handler.NewForexHandler(usecase.NewForexUsecase(market)),
		Crypto:  handler.NewCryptoHandler(usecase.NewCryptoUsecase(market)),
		Checks:  checks,
	}
}
