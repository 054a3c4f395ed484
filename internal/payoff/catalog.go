package payoff

// StrategyInfo describes one supported strategy for discovery endpoints and
// CLI help.
type StrategyInfo struct {
	Type        StrategyType    `json:"type"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo documents one recognized parameter and its fallback value.
// Defaults that depend on the underlying price are described relative to it.
type ParameterInfo struct {
	Name    string `json:"name"`
	Default any    `json:"default"`
}

// Catalog returns the supported fixed strategies with their recognized
// parameters and default policy. custom-strategy is excluded: it takes legs,
// not named parameters.
func Catalog() []StrategyInfo {
	return []StrategyInfo{
		{
			Type:        CoveredCall,
			Description: "Long futures plus a short call. Upside capped at the call strike.",
			Parameters: []ParameterInfo{
				{Name: "futuresPrice", Default: "underlying"},
				{Name: "callStrike", Default: "underlying + 500"},
				{Name: "premium", Default: 200},
				{Name: "futuresLotSize", Default: 50},
				{Name: "callLotSize", Default: 50},
			},
		},
		{
			Type:        BullCallSpread,
			Description: "Long call at the lower strike, short call at the higher strike.",
			Parameters: []ParameterInfo{
				{Name: "longCallStrike", Default: "underlying"},
				{Name: "shortCallStrike", Default: "underlying + 1000"},
				{Name: "longCallPremium", Default: 300},
				{Name: "shortCallPremium", Default: 150},
				{Name: "lotSize", Default: 50},
			},
		},
		{
			Type:        IronCondor,
			Description: "Short put spread below, short call spread above. Profits while price stays between the short strikes.",
			Parameters: []ParameterInfo{
				{Name: "putBuyStrike", Default: "underlying - 1000"},
				{Name: "putSellStrike", Default: "underlying - 500"},
				{Name: "callSellStrike", Default: "underlying + 500"},
				{Name: "callBuyStrike", Default: "underlying + 1000"},
				{Name: "netPremium", Default: 100},
				{Name: "lotSize", Default: 50},
			},
		},
		{
			Type:        LongStraddle,
			Description: "Long call and long put at the same strike. Profits on a large move either way.",
			Parameters: []ParameterInfo{
				{Name: "strike", Default: "underlying"},
				{Name: "callPremium", Default: 300},
				{Name: "putPremium", Default: 300},
				{Name: "lotSize", Default: 50},
			},
		},
		{
			Type:        ProtectivePut,
			Description: "Long stock plus a long put as downside insurance.",
			Parameters: []ParameterInfo{
				{Name: "stockPrice", Default: "underlying"},
				{Name: "putStrike", Default: "underlying - 500"},
				{Name: "putPremium", Default: 200},
				{Name: "lotSize", Default: 50},
			},
		},
		{
			Type:        ButterflySpread,
			Description: "Long the wing calls, short two calls at the body. Max profit at the middle strike.",
			Parameters: []ParameterInfo{
				{Name: "lowerStrike", Default: "underlying - 500"},
				{Name: "middleStrike", Default: "underlying"},
				{Name: "upperStrike", Default: "underlying + 500"},
				{Name: "lowerPremium", Default: 300},
				{Name: "middlePremium", Default: 200},
				{Name: "upperPremium", Default: 100},
				{Name: "lotSize", Default: 50},
			},
		},
	}
}
