package models

import "options-builder/internal/payoff"

// PayoffRequest is the request body for POST /api/payoff/calculate.
// Parameter values may be JSON numbers or numeric strings; missing parameters
// fall back to per-strategy defaults in the engine.
type PayoffRequest struct {
	StrategyType      string         `json:"strategy_type" binding:"required"`
	EntryDate         string         `json:"entry_date,omitempty"`
	ExpiryDate        string         `json:"expiry_date,omitempty"`
	Parameters        map[string]any `json:"parameters,omitempty"`
	UnderlyingPrice   float64        `json:"underlying_price,omitempty"`    // default: 18000
	PriceRangePercent float64        `json:"price_range_percent,omitempty"` // default: 30
	CustomLegs        []payoff.Leg   `json:"custom_legs,omitempty"`         // custom-strategy only
}

// CreateStrategyRequest is the request body for POST /api/strategies.
type CreateStrategyRequest struct {
	Name         string         `json:"name" binding:"required"`
	StrategyType string         `json:"strategy_type" binding:"required"`
	EntryDate    string         `json:"entry_date" binding:"required"` // YYYY-MM-DD
	ExpiryDate   string         `json:"expiry_date" binding:"required"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	CustomLegs   []payoff.Leg   `json:"custom_legs,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// UpdateStrategyRequest is the request body for PUT /api/strategies/:id.
// Every field is optional; absent fields are left unchanged.
type UpdateStrategyRequest struct {
	Name         *string        `json:"name,omitempty"`
	StrategyType *string        `json:"strategy_type,omitempty"`
	EntryDate    *string        `json:"entry_date,omitempty"`
	ExpiryDate   *string        `json:"expiry_date,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	CustomLegs   []payoff.Leg   `json:"custom_legs,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
}

// ListStrategiesQuery carries the pagination query for GET /api/strategies.
type ListStrategiesQuery struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}
