package payoff

import "fmt"

// UnknownStrategyError is returned when a strategy type matches none of the
// supported identifiers. Surfaced to clients as a bad-request error.
type UnknownStrategyError struct {
	Type string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy type: %q", e.Type)
}

// MalformedParameterError is returned when a supplied parameter value cannot
// be converted to a number.
type MalformedParameterError struct {
	Key   string
	Value any
}

func (e *MalformedParameterError) Error() string {
	return fmt.Sprintf("parameter %q is not numeric: %v", e.Key, e.Value)
}

// GridConfigError is returned when the price grid is asked for fewer than two
// points. That is a caller bug, not user input, so it fails loudly instead of
// dividing by zero.
type GridConfigError struct {
	Points int
}

func (e *GridConfigError) Error() string {
	return fmt.Sprintf("price grid needs at least 2 points, got %d", e.Points)
}
