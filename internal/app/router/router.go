// Package router assembles the gin engine of the API server.
package router

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	marketdatahandler "market_gateway/internal/feature/marketdata/transport/handler"
	"market_gateway/internal/platform/http/handler"
	"market_gateway/internal/platform/http/middleware"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port         string   // PORT, default 8080
	AllowOrigins []string // CORS_ALLOW_ORIGINS, comma separated; CORS is off when empty
}

// LoadConfig reads PORT and CORS_ALLOW_ORIGINS.
func LoadConfig() Config {
	cfg := Config{Port: os.Getenv("PORT")}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Stocks  *marketdatahandler.StocksHandler
	Options *marketdatahandler.OptionsHandler
	Forex   *marketdatahandler.CurrencyHandler
	Crypto  *marketdatahandler.CryptoHandler
	Checks  map[string]handler.Check
}

// NewRouter creates the engine with every route of the API.
func NewRouter(cfg Config, l *slog.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(l))

	if len(cfg.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.Match([]string{http.MethodGet, http.MethodHead}, "/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(h.Checks))

	stocks := r.Group("/stocks")
	{
		stocks.GET("/aggregates", h.Stocks.Aggregates)
		stocks.GET("/daily-open-close", h.Stocks.DailyOpenClose)
		stocks.GET("/grouped-daily", h.Stocks.GroupedDaily)
		stocks.GET("/previous-close", h.Stocks.PreviousClose)
	}

	// no grouped daily for options
	options := r.Group("/options")
	{
		options.GET("/aggregates", h.Options.Aggregates)
		options.GET("/daily-open-close", h.Options.DailyOpenClose)
		options.GET("/previous-close", h.Options.PreviousClose)
	}

	// no daily open/close for forex
	forex := r.Group("/forex")
	{
		forex.GET("/aggregates", h.Forex.Aggregates)
		forex.GET("/grouped-daily", h.Forex.GroupedDaily)
		forex.GET("/previous-close", h.Forex.PreviousClose)
	}

	crypto := r.Group("/crypto")
	{
		crypto.GET("/aggregates", h.Crypto.Aggregates)
		crypto.GET("/daily-open-close", h.Crypto.DailyOpenClose)
		crypto.GET("/grouped-daily", h.Crypto.GroupedDaily)
		crypto.GET("/previous-close", h.Crypto.PreviousClose)
	}

	return r
}
