// Package handler provides the HTTP handlers of the marketdata feature.
package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/domain/entity"
	"market_gateway/internal/feature/marketdata/transport/http/dto"
	"market_gateway/internal/feature/marketdata/usecase"
)

// statusOf maps an error kind to the HTTP status and the kind label of the response.
func statusOf(err error) (int, string) {
	switch domain.Kind(err) {
	case domain.ErrInvalidArgument:
		return http.StatusBadRequest, "invalid_argument"
	case domain.ErrNotFound:
		return http.StatusNotFound, "not_found"
	case domain.ErrRateLimited:
		return http.StatusTooManyRequests, "rate_limited"
	case domain.ErrEntitlement:
		return http.StatusForbidden, "entitlement"
	case domain.ErrUpstreamTransport:
		return http.StatusBadGateway, "upstream_transport"
	case domain.ErrUnrecognizedUpstream:
		return http.StatusBadGateway, "upstream_unrecognized"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, kind := statusOf(err)
	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: kind})
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError(key, "should be an integer")
	}
	return v, nil
}

func queryBool(c *gin.Context, key string, def bool) (bool, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, domain.NewValidationError(key, "should be true or false")
	}
	return v, nil
}

// adjusted reads the adjusted flag, true unless the caller says otherwise.
func adjusted(c *gin.Context) (bool, error) {
	return queryBool(c, "adjusted", true)
}

// parseWindow reads the aggregates window, applying the API defaults.
// Range checks are left to the usecase.
func parseWindow(c *gin.Context) (entity.Window, error) {
	w := usecase.DefaultWindow(c.Query("from"), c.Query("to"))

	var err error
	if w.Multiplier, err = queryInt(c, "multiplier", w.Multiplier); err != nil {
		return w, err
	}
	if ts := c.Query("timespan"); ts != "" {
		w.Timespan = entity.ParseTimespan(ts)
	}
	if w.Adjusted, err = adjusted(c); err != nil {
		return w, err
	}
	if s := c.Query("sort"); s != "" {
		if w.Sort, err = entity.ParseSortOrder(s); err != nil {
			return w, domain.NewValidationError("sort", "should be 'ASCENDING' or 'DESCENDING'")
		}
	}
	if w.Limit, err = queryInt(c, "limit", w.Limit); err != nil {
		return w, err
	}
	return w, nil
}

func parsePair(c *gin.Context) entity.CurrencyPair {
	return entity.CurrencyPair{
		From: c.Query("currency_from"),
		To:   c.Query("currency_to"),
	}
}

// parseContract never fails: an unknown type or an unparsable strike is left
// for contract validation, which reports it after the ticker and expiration.
func parseContract(c *gin.Context) entity.OptionContract {
	contract := entity.OptionContract{
		Underlying: c.Query("ticker"),
		Expiration: c.Query("expiration"),
		Type:       entity.Call,
		Strike:     math.NaN(),
	}
	if s := c.Query("type"); s != "" {
		contract.Type, _ = entity.ParseOptionType(s)
	}
	if strike, err := strconv.ParseFloat(c.Query("strike"), 64); err == nil {
		contract.Strike = strike
	}
	return contract
}
