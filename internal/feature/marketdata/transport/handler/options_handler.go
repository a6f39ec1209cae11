package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/http/dto"
)

// OptionsUsecase defines the option operations used by the handler.
type OptionsUsecase interface {
	Aggregates(ctx context.Context, contract entity.OptionContract, w entity.Window) ([]entity.AggregateBar, error)
	DailyOpenClose(ctx context.Context, contract entity.OptionContract, date string, adjusted bool) (entity.OpenClose, error)
	PreviousClose(ctx context.Context, contract entity.OptionContract, adjusted bool) (entity.PreviousClose, error)
}

// OptionsHandler serves the /options routes. Every route identifies the
// contract with ticker, expiration, type and strike.
type OptionsHandler struct {
	uc OptionsUsecase
}

// NewOptionsHandler creates an OptionsHandler.
func NewOptionsHandler(uc OptionsUsecase) *OptionsHandler {
	return &OptionsHandler{uc: uc}
}

// Aggregates handles
// GET /options/aggregates?ticker=AAPL&expiration=2024-06-21&type=CALL&strike=150&from=...&to=...
func (h *OptionsHandler) Aggregates(c *gin.Context) {
	contract := parseContract(c)
	w, err := parseWindow(c)
	if err != nil {
		writeError(c, err)
		return
	}
	bars, err := h.uc.Aggregates(c.Request.Context(), contract, w)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAggregateBars(bars))
}

// DailyOpenClose handles GET /options/daily-open-close?ticker=...&date=2024-06-20
func (h *OptionsHandler) DailyOpenClose(c *gin.Context) {
	contract := parseContract(c)
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	oc, err := h.uc.DailyOpenClose(c.Request.Context(), contract, c.Query("date"), adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOpenClose(oc))
}

// PreviousClose handles GET /options/previous-close?ticker=...
func (h *OptionsHandler) PreviousClose(c *gin.Context) {
	contract := parseContract(c)
	adj, err := adjusted(c)
	if err != nil {
		writeError(c, err)
		return
	}
	pc, err := h.uc.PreviousClose(c.Request.Context(), contract, adj)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPreviousClose(pc))
}
