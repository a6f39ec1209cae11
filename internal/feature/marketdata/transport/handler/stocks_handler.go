package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/http/dto"
)

// StocksUsecase defines the stock operations used by the handler.
// Following Go convention, the interface is defined on the consumer side.
type StocksUsecase interface {
	Aggregates(ctx context.Context, ticker string, w entity.Window) ([]entity.AggregateBar, error)
	DailyOpenClose(ctx context.Context, ticker, date string, adjusted bool) (entity.OpenClose, error)
	GroupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error)
	PreviousClose(ctx context.Context, ticker string, adjusted bool) (entity.PreviousClose, error)
}

// StocksHandler serves the /stocks routes.
type StocksHandler struct {
	uc StocksUsecase
}

// NewStocksHandler creates a StocksHandler.
func NewStocksHandler(uc StocksUsecase) *StocksHandler {
	return &StocksHandler{uc: uc}
}

// Aggregates handles
// GET /stocks/aggregates?ticker=AAPL&from=2023-01-09&to=2023-01-10&timespan=day&multiplier=1&limit=5000
func (h *StocksHandler) Aggregates(c *gin.Context) {
	w, err := parseWindow(c)
	if err != nil {
		writeError(c, err)
		return
	}
	bars, err := h.uc.Aggregates(c.Request.Context(), c.Query("ticker"), w)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAggregateBars(bars))
}

// DailyOpenClose handles GET /stocks/daily-open-close?ticker=AAPL&date=2023-01-09
func (h *StocksHandler) DailyOpenClose(c *gin.Context) {
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	oc, err := h.uc.DailyOpenClose(c.Request.Context(), c.Query("ticker"), c.Query("date"), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOpenClose(oc))
}

// GroupedDaily handles GET /stocks/grouped-daily?date=2023-01-09
func (h *StocksHandler) GroupedDaily(c *gin.Context) {
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	bars, err := h.uc.GroupedDaily(c.Request.Context(), c.Query("date"), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromGroupedDailyBars(bars))
}

// PreviousClose handles GET /stocks/previous-close?ticker=AAPL
func (h *StocksHandler) PreviousClose(c *gin.Context) {
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	pc, err := h.uc.PreviousClose(c.Request.Context(), c.Query("ticker"), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPreviousClose(pc))
}
