package payoff

// StrategyType identifies one of the supported payoff calculations.
type StrategyType string

const (
	CoveredCall     StrategyType = "covered-call"
	BullCallSpread  StrategyType = "bull-call-spread"
	IronCondor      StrategyType = "iron-condor"
	LongStraddle    StrategyType = "long-straddle"
	ProtectivePut   StrategyType = "protective-put"
	ButterflySpread StrategyType = "butterfly-spread"
	CustomStrategy  StrategyType = "custom-strategy"
)

// Known reports whether t is one of the supported strategy identifiers.
func Known(t StrategyType) bool {
	switch t {
	case CoveredCall, BullCallSpread, IronCondor, LongStraddle,
		ProtectivePut, ButterflySpread, CustomStrategy:
		return true
	}
	return false
}

// Calculate is the engine entry point. It produces the payoff curve for the
// named strategy over a ±rangePercent band around underlyingPrice.
//
// legs is only consulted for CustomStrategy. A nil params map is treated as
// empty, so every fixed strategy falls back to its documented defaults. An
// unrecognized strategy type is an UnknownStrategyError.
func Calculate(strategyType StrategyType, params Params, underlyingPrice, rangePercent float64, legs []Leg) ([]Point, error) {
	if strategyType == CustomStrategy {
		return EvaluateLegs(legs, underlyingPrice, rangePercent)
	}

	if params == nil {
		params = Params{}
	}

	switch strategyType {
	case CoveredCall:
		return coveredCall(params, underlyingPrice, rangePercent)
	case BullCallSpread:
		return bullCallSpread(params, underlyingPrice, rangePercent)
	case IronCondor:
		return ironCondor(params, underlyingPrice, rangePercent)
	case LongStraddle:
		return longStraddle(params, underlyingPrice, rangePercent)
	case ProtectivePut:
		return protectivePut(params, underlyingPrice, rangePercent)
	case ButterflySpread:
		return butterflySpread(params, underlyingPrice, rangePercent)
	default:
		return nil, &UnknownStrategyError{Type: string(strategyType)}
	}
}
