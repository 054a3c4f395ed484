package payoff

import "math"

// Each fixed strategy follows the same shape: a typed inputs struct, a
// defaults record keyed off the underlying price, a resolve step that merges
// caller parameters onto the defaults once, and a per-price P&L function.
//
// All strike comparisons treat price == strike as the not-yet-breached side.
// That tie-break is deliberate and shared by every strategy; changing it
// changes the curve at the kink.

// resolver merges caller params onto defaults, collecting the first
// conversion error instead of threading err through every field.
type resolver struct {
	p   Params
	err error
}

func (r *resolver) float(key string, def float64) float64 {
	if r.err != nil {
		return def
	}
	v, err := r.p.float(key, def)
	if err != nil {
		r.err = err
		return def
	}
	return v
}

// Covered call: long futures + short call.

type coveredCallInputs struct {
	FuturesPrice   float64
	CallStrike     float64
	Premium        float64
	FuturesLotSize float64
	CallLotSize    float64
}

func coveredCallDefaults(underlying float64) coveredCallInputs {
	return coveredCallInputs{
		FuturesPrice:   underlying,
		CallStrike:     underlying + 500,
		Premium:        200,
		FuturesLotSize: 50,
		CallLotSize:    50,
	}
}

func resolveCoveredCall(p Params, underlying float64) (coveredCallInputs, error) {
	d := coveredCallDefaults(underlying)
	r := resolver{p: p}
	in := coveredCallInputs{
		FuturesPrice:   r.float("futuresPrice", d.FuturesPrice),
		CallStrike:     r.float("callStrike", d.CallStrike),
		Premium:        r.float("premium", d.Premium),
		FuturesLotSize: r.float("futuresLotSize", d.FuturesLotSize),
		CallLotSize:    r.float("callLotSize", d.CallLotSize),
	}
	return in, r.err
}

func (in coveredCallInputs) pnlAt(price float64) float64 {
	futPnl := (price - in.FuturesPrice) * in.FuturesLotSize

	// Short call: keep the premium at or below the strike, give back the
	// breach above it.
	callPnl := in.Premium * in.CallLotSize
	if price > in.CallStrike {
		callPnl = (in.Premium - (price - in.CallStrike)) * in.CallLotSize
	}
	return futPnl + callPnl
}

func coveredCall(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveCoveredCall(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}

// Bull call spread: long call at the lower strike, short call at the higher.

type bullCallSpreadInputs struct {
	LongCallStrike   float64
	ShortCallStrike  float64
	LongCallPremium  float64
	ShortCallPremium float64
	LotSize          float64
}

func bullCallSpreadDefaults(underlying float64) bullCallSpreadInputs {
	return bullCallSpreadInputs{
		LongCallStrike:   underlying,
		ShortCallStrike:  underlying + 1000,
		LongCallPremium:  300,
		ShortCallPremium: 150,
		LotSize:          50,
	}
}

func resolveBullCallSpread(p Params, underlying float64) (bullCallSpreadInputs, error) {
	d := bullCallSpreadDefaults(underlying)
	r := resolver{p: p}
	in := bullCallSpreadInputs{
		LongCallStrike:   r.float("longCallStrike", d.LongCallStrike),
		ShortCallStrike:  r.float("shortCallStrike", d.ShortCallStrike),
		LongCallPremium:  r.float("longCallPremium", d.LongCallPremium),
		ShortCallPremium: r.float("shortCallPremium", d.ShortCallPremium),
		LotSize:          r.float("lotSize", d.LotSize),
	}
	return in, r.err
}

func (in bullCallSpreadInputs) pnlAt(price float64) float64 {
	longPnl := -in.LongCallPremium
	if price > in.LongCallStrike {
		longPnl = (price - in.LongCallStrike) - in.LongCallPremium
	}

	shortPnl := in.ShortCallPremium
	if price > in.ShortCallStrike {
		shortPnl = in.ShortCallPremium - (price - in.ShortCallStrike)
	}

	return (longPnl + shortPnl) * in.LotSize
}

func bullCallSpread(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveBullCallSpread(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}

// Iron condor: short put spread below, short call spread above.

type ironCondorInputs struct {
	PutBuyStrike   float64
	PutSellStrike  float64
	CallSellStrike float64
	CallBuyStrike  float64
	NetPremium     float64
	LotSize        float64
}

func ironCondorDefaults(underlying float64) ironCondorInputs {
	return ironCondorInputs{
		PutBuyStrike:   underlying - 1000,
		PutSellStrike:  underlying - 500,
		CallSellStrike: underlying + 500,
		CallBuyStrike:  underlying + 1000,
		NetPremium:     100,
		LotSize:        50,
	}
}

func resolveIronCondor(p Params, underlying float64) (ironCondorInputs, error) {
	d := ironCondorDefaults(underlying)
	r := resolver{p: p}
	in := ironCondorInputs{
		PutBuyStrike:   r.float("putBuyStrike", d.PutBuyStrike),
		PutSellStrike:  r.float("putSellStrike", d.PutSellStrike),
		CallSellStrike: r.float("callSellStrike", d.CallSellStrike),
		CallBuyStrike:  r.float("callBuyStrike", d.CallBuyStrike),
		NetPremium:     r.float("netPremium", d.NetPremium),
		LotSize:        r.float("lotSize", d.LotSize),
	}
	return in, r.err
}

func (in ironCondorInputs) pnlAt(price float64) float64 {
	pnl := in.NetPremium

	// Put wing. Below the bought put both legs are in the money and the
	// net adjustment collapses to the spread width.
	if price < in.PutBuyStrike {
		pnl -= (in.PutBuyStrike - price) - (in.PutSellStrike - price)
	} else if price < in.PutSellStrike {
		pnl -= in.PutSellStrike - price
	}

	// Call wing, mirrored.
	if price > in.CallBuyStrike {
		pnl -= (price - in.CallBuyStrike) - (price - in.CallSellStrike)
	} else if price > in.CallSellStrike {
		pnl -= price - in.CallSellStrike
	}

	return pnl * in.LotSize
}

func ironCondor(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveIronCondor(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}

// Long straddle: long call + long put at the same strike.

type longStraddleInputs struct {
	Strike      float64
	CallPremium float64
	PutPremium  float64
	LotSize     float64
}

func longStraddleDefaults(underlying float64) longStraddleInputs {
	return longStraddleInputs{
		Strike:      underlying,
		CallPremium: 300,
		PutPremium:  300,
		LotSize:     50,
	}
}

func resolveLongStraddle(p Params, underlying float64) (longStraddleInputs, error) {
	d := longStraddleDefaults(underlying)
	r := resolver{p: p}
	in := longStraddleInputs{
		Strike:      r.float("strike", d.Strike),
		CallPremium: r.float("callPremium", d.CallPremium),
		PutPremium:  r.float("putPremium", d.PutPremium),
		LotSize:     r.float("lotSize", d.LotSize),
	}
	return in, r.err
}

func (in longStraddleInputs) pnlAt(price float64) float64 {
	callPnl := math.Max(0, price-in.Strike) - in.CallPremium
	putPnl := math.Max(0, in.Strike-price) - in.PutPremium
	return (callPnl + putPnl) * in.LotSize
}

func longStraddle(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveLongStraddle(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}

// Protective put: long stock + long put.

type protectivePutInputs struct {
	StockPrice float64
	PutStrike  float64
	PutPremium float64
	LotSize    float64
}

func protectivePutDefaults(underlying float64) protectivePutInputs {
	return protectivePutInputs{
		StockPrice: underlying,
		PutStrike:  underlying - 500,
		PutPremium: 200,
		LotSize:    50,
	}
}

func resolveProtectivePut(p Params, underlying float64) (protectivePutInputs, error) {
	d := protectivePutDefaults(underlying)
	r := resolver{p: p}
	in := protectivePutInputs{
		StockPrice: r.float("stockPrice", d.StockPrice),
		PutStrike:  r.float("putStrike", d.PutStrike),
		PutPremium: r.float("putPremium", d.PutPremium),
		LotSize:    r.float("lotSize", d.LotSize),
	}
	return in, r.err
}

func (in protectivePutInputs) pnlAt(price float64) float64 {
	stockPnl := price - in.StockPrice
	putPnl := math.Max(0, in.PutStrike-price) - in.PutPremium
	return (stockPnl + putPnl) * in.LotSize
}

func protectivePut(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveProtectivePut(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}

// Butterfly spread: long the wings, short two calls at the body.

type butterflySpreadInputs struct {
	LowerStrike   float64
	MiddleStrike  float64
	UpperStrike   float64
	LowerPremium  float64
	MiddlePremium float64
	UpperPremium  float64
	LotSize       float64
}

func butterflySpreadDefaults(underlying float64) butterflySpreadInputs {
	return butterflySpreadInputs{
		LowerStrike:   underlying - 500,
		MiddleStrike:  underlying,
		UpperStrike:   underlying + 500,
		LowerPremium:  300,
		MiddlePremium: 200,
		UpperPremium:  100,
		LotSize:       50,
	}
}

func resolveButterflySpread(p Params, underlying float64) (butterflySpreadInputs, error) {
	d := butterflySpreadDefaults(underlying)
	r := resolver{p: p}
	in := butterflySpreadInputs{
		LowerStrike:   r.float("lowerStrike", d.LowerStrike),
		MiddleStrike:  r.float("middleStrike", d.MiddleStrike),
		UpperStrike:   r.float("upperStrike", d.UpperStrike),
		LowerPremium:  r.float("lowerPremium", d.LowerPremium),
		MiddlePremium: r.float("middlePremium", d.MiddlePremium),
		UpperPremium:  r.float("upperPremium", d.UpperPremium),
		LotSize:       r.float("lotSize", d.LotSize),
	}
	return in, r.err
}

func (in butterflySpreadInputs) pnlAt(price float64) float64 {
	lowerPnl := math.Max(0, price-in.LowerStrike) - in.LowerPremium
	middlePnl := (in.MiddlePremium - math.Max(0, price-in.MiddleStrike)) * 2
	upperPnl := math.Max(0, price-in.UpperStrike) - in.UpperPremium
	return (lowerPnl + middlePnl + upperPnl) * in.LotSize
}

func butterflySpread(p Params, underlying, rangePercent float64) ([]Point, error) {
	in, err := resolveButterflySpread(p, underlying)
	if err != nil {
		return nil, err
	}
	return curve(underlying, rangePercent, in.pnlAt)
}
