package payoff

// LegType selects the payoff shape of one position: linear for futures,
// intrinsic value for calls and puts.
type LegType string

const (
	LegFutures LegType = "FUT"
	LegCall    LegType = "CE"
	LegPut     LegType = "PE"
)

// LegAction is the position direction. SELL inverts the sign of the payoff.
type LegAction string

const (
	ActionBuy  LegAction = "BUY"
	ActionSell LegAction = "SELL"
)

// Leg is one position inside a custom multi-leg strategy. EntryPrice and
// Strike default to the underlying price when nil; Premium defaults to zero.
type Leg struct {
	Type       LegType   `json:"type" yaml:"type"`
	Action     LegAction `json:"action" yaml:"action"`
	LotSize    float64   `json:"lotSize" yaml:"lot_size"`
	EntryPrice *float64  `json:"entryPrice,omitempty" yaml:"entry_price,omitempty"`
	Strike     *float64  `json:"strike,omitempty" yaml:"strike,omitempty"`
	Premium    *float64  `json:"premium,omitempty" yaml:"premium,omitempty"`
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// pnlAt computes this leg's P&L at one underlying price.
func (l Leg) pnlAt(price, underlying float64) float64 {
	if l.Type == LegFutures {
		entry := orDefault(l.EntryPrice, underlying)
		if l.Action == ActionSell {
			return (entry - price) * l.LotSize
		}
		return (price - entry) * l.LotSize
	}

	strike := orDefault(l.Strike, underlying)
	premium := orDefault(l.Premium, 0)

	var intrinsic float64
	if l.Type == LegCall {
		intrinsic = max0(price - strike)
	} else {
		intrinsic = max0(strike - price)
	}

	if l.Action == ActionSell {
		return (premium - intrinsic) * l.LotSize
	}
	return (intrinsic - premium) * l.LotSize
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// EvaluateLegs builds the payoff curve of an arbitrary leg combination by
// summing every leg's P&L at each grid price. Leg order never changes the
// result. No legs means no curve: the empty slice is defined output, not an
// error.
func EvaluateLegs(legs []Leg, underlyingPrice, rangePercent float64) ([]Point, error) {
	if len(legs) == 0 {
		return []Point{}, nil
	}
	return curve(underlyingPrice, rangePercent, func(price float64) float64 {
		total := 0.0
		for _, leg := range legs {
			total += leg.pnlAt(price, underlyingPrice)
		}
		return total
	})
}
