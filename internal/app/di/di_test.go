package di

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_gateway/internal/app/router"
	archiveusecase "market_gateway/internal/feature/archive/usecase"
	"market_gateway/internal/platform/externalapi/polygon"
	platformhandler "market_gateway/internal/platform/http/handler"
	"market_gateway/internal/platform/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestAPIKeyCheck(t *testing.T) {
	t.Parallel()

	assert.Error(t, APIKeyCheck(polygon.Config{})(context.Background()))
	assert.NoError(t, APIKeyCheck(polygon.Config{APIKey: "k"})(context.Background()))
}

func TestNewHandlers_ServesStocksThroughPolygon(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/aggs/ticker/AAPL/prev", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","resultsCount":1,"results":[{"T":"AAPL","o":1,"h":2,"l":0.5,"c":1.5,"v":100,"t":1704153600000}]}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := polygon.Config{APIKey: "secret", BaseURL: upstream.URL, Timeout: polygon.DefaultTimeout}
	h := NewHandlers(NewMarket(cfg), map[string]platformhandler.Check{"polygon": APIKeyCheck(cfg)})
	r := router.NewRouter(router.Config{Port: "8080"}, logger.New(io.Discard, logger.Config{}), h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stocks/previous-close?ticker=AAPL", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ticker":"AAPL"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewArchiveSink(t *testing.T) {
	t.Parallel()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sink, err := NewArchiveSink(archiveusecase.Config{Sink: archiveusecase.SinkParquet, Dir: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.NotNil(t, sink)

	sink, err = NewArchiveSink(archiveusecase.Config{Sink: archiveusecase.SinkDB}, gdb)
	require.NoError(t, err)
	assert.NotNil(t, sink)

	_, err = NewArchiveSink(archiveusecase.Config{Sink: archiveusecase.SinkDB}, nil)
	assert.Error(t, err)

	_, err = NewArchiveSink(archiveusecase.Config{Sink: "csv"}, gdb)
	assert.Error(t, err)
}

func TestNeedsDB(t *testing.T) {
	t.Parallel()

	assert.True(t, NeedsDB(archiveusecase.Config{Sink: archiveusecase.SinkDB, Tickers: []string{"AAPL"}}))
	assert.True(t, NeedsDB(archiveusecase.Config{Sink: archiveusecase.SinkParquet}))
	assert.False(t, NeedsDB(archiveusecase.Config{Sink: archiveusecase.SinkParquet, Tickers: []string{"AAPL"}}))
	assert.Nil(t, NewSymbolRepository(nil))
}
