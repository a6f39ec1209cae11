package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/http/dto"
)

// ForexUsecase defines the forex operations used by the handler.
type ForexUsecase interface {
	Aggregates(ctx context.Context, pair entity.CurrencyPair, w entity.Window) ([]entity.AggregateBar, error)
	GroupedDaily(ctx context.Context, date string, adjusted bool) ([]entity.GroupedDailyBar, error)
	PreviousClose(ctx context.Context, pair entity.CurrencyPair, adjusted bool) (entity.PreviousClose, error)
}

// CryptoUsecase defines the crypto operations used by the handler.
type CryptoUsecase interface {
	ForexUsecase
	DailyOpenClose(ctx context.Context, pair entity.CurrencyPair, date string, adjusted bool) (entity.CryptoOpenClose, error)
}

// CurrencyHandler serves the /forex and /crypto routes, which share their
// parameters: currency_from and currency_to.
type CurrencyHandler struct {
	uc ForexUsecase
}

// NewForexHandler creates the handler of the /forex routes.
func NewForexHandler(uc ForexUsecase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// Aggregates handles GET /{forex,crypto}/aggregates?currency_from=USD&currency_to=EUR&from=...&to=...
func (h *CurrencyHandler) Aggregates(c *gin.Context) {
	w, err := parseWindow(c)
	if err != nil {
		writeError(c, err)
		return
	}
	bars, err := h.uc.Aggregates(c.Request.Context(), parsePair(c), w)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAggregateBars(bars))
}

// GroupedDaily handles GET /{forex,crypto}/grouped-daily?date=2023-01-09
func (h *CurrencyHandler) GroupedDaily(c *gin.Context) {
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

// PreviousClose handles GET /{forex,crypto}/previous-close?currency_from=USD&currency_to=EUR
func (h *CurrencyHandler) PreviousClose(c *gin.Context) {
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	pc, err := h.uc.PreviousClose(c.Request.Context(), parsePair(c), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPreviousClose(pc))
}

// CryptoHandler adds the crypto daily open/close to the currency routes.
type CryptoHandler struct {
	*CurrencyHandler
	uc CryptoUsecase
}

// NewCryptoHandler creates the handler of the /crypto routes.
func NewCryptoHandler(uc CryptoUsecase) *CryptoHandler {
	return &CryptoHandler{CurrencyHandler: &CurrencyHandler{uc: uc}, uc: uc}
}

// DailyOpenClose handles GET /crypto/daily-open-close?currency_from=USD&currency_to=BTC&date=2023-01-09
func (h *CryptoHandler) DailyOpenClose(c *gin.Context) {
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	oc, err := h.uc.DailyOpenClose(c.Request.Context(), parsePair(c), c.Query("date"), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCryptoOpenClose(oc))
}
