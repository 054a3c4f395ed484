package payoff

import "strconv"

// Params carries strategy parameters as supplied by the caller. Values may be
// JSON numbers or numeric strings; anything else is a MalformedParameterError.
// Missing keys are never an error, they resolve to per-strategy defaults.
type Params map[string]any

// float returns the numeric value for key, or def when the key is absent.
func (p Params) float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, &MalformedParameterError{Key: key, Value: v}
		}
		return f, nil
	default:
		return 0, &MalformedParameterError{Key: key, Value: v}
	}
}
