package router_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_gateway/internal/app/di"
	"market_gateway/internal/app/router"
	"market_gateway/internal/platform/externalapi/polygon"
	"market_gateway/internal/platform/http/handler"
	"market_gateway/internal/platform/http/middleware"
	"market_gateway/internal/platform/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T, cfg router.Config, checks map[string]handler.Check) *gin.Engine {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","resultsCount":0,"results":[]}`))
	}))
	t.Cleanup(upstream.Close)

	market := di.NewMarket(polygon.Config{APIKey: "k", BaseURL: upstream.URL, Timeout: polygon.DefaultTimeout})
	return router.NewRouter(cfg, logger.New(io.Discard, logger.Config{}), di.NewHandlers(market, checks))
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, router.Config{}, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/stocks/aggregates?ticker=AAPL&from=2024-01-02&to=2024-01-05", http.StatusNotFound},
		{"/stocks/aggregates?ticker=AAPL&from=2024/01/02&to=2024-01-05", http.StatusBadRequest},
		{"/forex/grouped-daily?date=2024-01-02", http.StatusNotFound},
		{"/crypto/grouped-daily?date=2024-01-02", http.StatusNotFound},
		{"/options/grouped-daily?date=2024-01-02", http.StatusNotFound},
		{"/forex/daily-open-close?from=EUR&to=USD&date=2024-01-02", http.StatusNotFound},
		{"/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_OptionContractCheckOrder(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, router.Config{}, nil)

	tests := []struct {
		query string
		want  string
	}{
		{"ticker=&strike=", `{"error":"'ticker' should be non-empty","kind":"invalid_argument"}`},
		{"ticker=AAPL&expiration=soon&type=STRADDLE&strike=x", `{"error":"'expiration' date should be of format 'YYYY-MM-DD'","kind":"invalid_argument"}`},
		{"ticker=AAPL&expiration=2024-06-21&type=STRADDLE&strike=x", `{"error":"'type' should be 'CALL' or 'PUT'","kind":"invalid_argument"}`},
		{"ticker=AAPL&expiration=2024-06-21&strike=x", `{"error":"'strike' price should be a number","kind":"invalid_argument"}`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/options/previous-close?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestNewRouter_ReadyzReportsFailingCheck(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, router.Config{}, map[string]handler.Check{
		"upstream": func(context.Context) error { return errors.New("down") },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, router.Config{AllowOrigins: []string{"https://app.example.com"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example.com, ,https://b.example.com")

	cfg := router.LoadConfig()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowOrigins)
}
