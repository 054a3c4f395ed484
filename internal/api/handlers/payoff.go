package handlers

import (
	"errors"
	"net/http"

	"options-builder/internal/api/models"
	"options-builder/internal/config"
	"options-builder/internal/payoff"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PayoffHandler handles payoff calculation requests.
type PayoffHandler struct {
	log zerolog.Logger
}

// NewPayoffHandler creates a new payoff handler.
func NewPayoffHandler(log zerolog.Logger) *PayoffHandler {
	return &PayoffHandler{log: log}
}

// Calculate handles POST /api/payoff/calculate. The response body is the
// curve itself: an array of {price, pnl} points for charting.
func (h *PayoffHandler) Calculate(c *gin.Context) {
	var req models.PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if req.UnderlyingPrice == 0 {
		req.UnderlyingPrice = config.DefaultUnderlyingPrice
	}
	if req.PriceRangePercent == 0 {
		req.PriceRangePercent = config.DefaultPriceRangePercent
	}
	if req.UnderlyingPrice <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "underlying_price must be positive",
			},
		})
		return
	}
	if req.PriceRangePercent <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "price_range_percent must be positive",
			},
		})
		return
	}

	points, err := payoff.Calculate(
		payoff.StrategyType(req.StrategyType),
		payoff.Params(req.Parameters),
		req.UnderlyingPrice,
		req.PriceRangePercent,
		req.CustomLegs,
	)
	if err != nil {
		var unknown *payoff.UnknownStrategyError
		var malformed *payoff.MalformedParameterError
		switch {
		case errors.As(err, &unknown):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_STRATEGY",
					Message: err.Error(),
				},
			})
		case errors.As(err, &malformed):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PARAMETER",
					Message: err.Error(),
					Details: map[string]any{"parameter": malformed.Key},
				},
			})
		default:
			h.log.Error().Err(err).Str("strategy_type", req.StrategyType).Msg("payoff calculation failed")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "CALCULATION_ERROR",
					Message: err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, points)
}

// ListStrategyTypes handles GET /api/payoff/strategies: the catalog of
// supported strategies, their parameters, and default policy.
func (h *PayoffHandler) ListStrategyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": payoff.Catalog()})
}
