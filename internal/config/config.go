package config

import (
	"errors"
	"fmt"
	"os"

	"options-builder/internal/payoff"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a scenario file leaves the market inputs out.
const (
	DefaultUnderlyingPrice   = 18000
	DefaultPriceRangePercent = 30
)

// Config is the on-disk scenario shape (YAML). A scenario is one payoff
// calculation: which strategy, its parameters, and the price band to chart.
type Config struct {
	Strategy          StrategyConfig `yaml:"strategy"`
	UnderlyingPrice   float64        `yaml:"underlying_price"`
	PriceRangePercent float64        `yaml:"price_range_percent"`
	// Legs is only consulted for custom-strategy scenarios.
	Legs []payoff.Leg `yaml:"legs,omitempty"`
}

type StrategyConfig struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Load reads a scenario file, fills defaults, and validates it.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.UnderlyingPrice == 0 {
		c.UnderlyingPrice = DefaultUnderlyingPrice
	}
	if c.PriceRangePercent == 0 {
		c.PriceRangePercent = DefaultPriceRangePercent
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a scenario without defaults or validation. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Type == "" {
		return errors.New("strategy.type is required")
	}
	if !payoff.Known(payoff.StrategyType(c.Strategy.Type)) {
		return fmt.Errorf("unsupported strategy type: %q", c.Strategy.Type)
	}
	if c.UnderlyingPrice <= 0 {
		return fmt.Errorf("underlying_price must be positive, got %v", c.UnderlyingPrice)
	}
	if c.PriceRangePercent <= 0 {
		return fmt.Errorf("price_range_percent must be positive, got %v", c.PriceRangePercent)
	}
	for i, leg := range c.Legs {
		switch leg.Type {
		case payoff.LegFutures, payoff.LegCall, payoff.LegPut:
		default:
			return fmt.Errorf("legs[%d]: invalid type %q", i, leg.Type)
		}
		switch leg.Action {
		case payoff.ActionBuy, payoff.ActionSell:
		default:
			return fmt.Errorf("legs[%d]: invalid action %q", i, leg.Action)
		}
	}
	return nil
}

// Calculate runs the scenario through the engine.
func (c *Config) Calculate() ([]payoff.Point, error) {
	return payoff.Calculate(
		payoff.StrategyType(c.Strategy.Type),
		payoff.Params(c.Strategy.Params),
		c.UnderlyingPrice,
		c.PriceRangePercent,
		c.Legs,
	)
}
