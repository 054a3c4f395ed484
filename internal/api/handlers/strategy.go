package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"options-builder/internal/api/models"
	"options-builder/internal/payoff"
	"options-builder/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StrategyHandler handles CRUD for saved strategy configurations.
type StrategyHandler struct {
	store store.StrategyStore
	log   zerolog.Logger
}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler(st store.StrategyStore, log zerolog.Logger) *StrategyHandler {
	return &StrategyHandler{store: st, log: log}
}

// Create handles POST /api/strategies.
func (h *StrategyHandler) Create(c *gin.Context) {
	var req models.CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if !payoff.Known(payoff.StrategyType(req.StrategyType)) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_STRATEGY",
				Message: "unknown strategy type: " + strconv.Quote(req.StrategyType),
			},
		})
		return
	}

	st := &store.Strategy{
		Name:         req.Name,
		StrategyType: req.StrategyType,
		EntryDate:    req.EntryDate,
		ExpiryDate:   req.ExpiryDate,
		Parameters:   req.Parameters,
		CustomLegs:   req.CustomLegs,
		Notes:        req.Notes,
	}
	if err := h.store.Create(c.Request.Context(), st); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.StandardResponse{
		Success: true,
		Message: "Strategy created successfully",
		Data:    st,
	})
}

// List handles GET /api/strategies with skip/limit pagination.
func (h *StrategyHandler) List(c *gin.Context) {
	var q models.ListStrategiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}

	strategies, err := h.store.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StandardResponse{
		Success: true,
		Message: "Retrieved " + strconv.Itoa(len(strategies)) + " strategies",
		Data:    strategies,
	})
}

// Get handles GET /api/strategies/:id.
func (h *StrategyHandler) Get(c *gin.Context) {
	id, ok := h.strategyID(c)
	if !ok {
		return
	}

	st, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StandardResponse{
		Success: true,
		Message: "Strategy retrieved successfully",
		Data:    st,
	})
}

// Update handles PUT /api/strategies/:id. Absent fields keep their value.
func (h *StrategyHandler) Update(c *gin.Context) {
	id, ok := h.strategyID(c)
	if !ok {
		return
	}

	var req models.UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if req.StrategyType != nil && !payoff.Known(payoff.StrategyType(*req.StrategyType)) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_STRATEGY",
				Message: "unknown strategy type: " + strconv.Quote(*req.StrategyType),
			},
		})
		return
	}

	st, err := h.store.Update(c.Request.Context(), id, store.StrategyUpdate{
		Name:         req.Name,
		StrategyType: req.StrategyType,
		EntryDate:    req.EntryDate,
		ExpiryDate:   req.ExpiryDate,
		Parameters:   req.Parameters,
		CustomLegs:   req.CustomLegs,
		Notes:        req.Notes,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StandardResponse{
		Success: true,
		Message: "Strategy updated successfully",
		Data:    st,
	})
}

// Delete handles DELETE /api/strategies/:id.
func (h *StrategyHandler) Delete(c *gin.Context) {
	id, ok := h.strategyID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StandardResponse{
		Success: true,
		Message: "Strategy " + strconv.FormatInt(id, 10) + " deleted successfully",
		Data:    nil,
	})
}

func (h *StrategyHandler) strategyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_ID",
				Message: "strategy id must be an integer",
			},
		})
		return 0, false
	}
	return id, true
}

func (h *StrategyHandler) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "strategy not found",
			},
		})
		return
	}
	h.log.Error().Err(err).Msg("strategy store error")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "STORE_ERROR",
			Message: err.Error(),
		},
	})
}
