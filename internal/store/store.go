// Package store persists user-saved strategy configurations.
package store

import (
	"context"
	"errors"
	"time"

	"options-builder/internal/payoff"
)

// ErrNotFound is returned when no strategy exists for the requested ID.
var ErrNotFound = errors.New("strategy not found")

// Strategy is a saved strategy configuration. Parameters and CustomLegs are
// stored as JSON columns; dates stay as the YYYY-MM-DD strings clients send.
type Strategy struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	StrategyType string         `json:"strategy_type"`
	EntryDate    string         `json:"entry_date"`
	ExpiryDate   string         `json:"expiry_date"`
	Parameters   map[string]any `json:"parameters"`
	CustomLegs   []payoff.Leg   `json:"custom_legs"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// StrategyUpdate carries a partial update. Nil fields are left unchanged.
type StrategyUpdate struct {
	Name         *string
	StrategyType *string
	EntryDate    *string
	ExpiryDate   *string
	Parameters   map[string]any
	CustomLegs   []payoff.Leg
	Notes        *string
}

// StrategyStore is the persistence contract used by the API handlers.
type StrategyStore interface {
	Create(ctx context.Context, s *Strategy) error
	List(ctx context.Context, skip, limit int) ([]Strategy, error)
	Get(ctx context.Context, id int64) (*Strategy, error)
	Update(ctx context.Context, id int64, upd StrategyUpdate) (*Strategy, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}
