package payoff

import (
	"errors"
	"math"
	"testing"
)

// Scenario from the product requirements: covered call exactly at the strike
// keeps the full premium, because price == strike resolves to the
// not-breached side.
func TestCoveredCallAtStrike(t *testing.T) {
	in, err := resolveCoveredCall(Params{
		"futuresPrice":   18000,
		"callStrike":     18500,
		"premium":        200,
		"futuresLotSize": 50,
		"callLotSize":    50,
	}, 18000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got := in.pnlAt(18500)
	// futures (18500-18000)*50 = 25000, short call keeps 200*50 = 10000
	if !almostEqual(got, 35000) {
		t.Fatalf("pnl at strike = %v, want 35000", got)
	}

	// With equal lot sizes the futures gain offsets the short call's
	// giveback point for point, so the curve caps flat above the strike.
	above := in.pnlAt(18501)
	if !almostEqual(above, got) {
		t.Errorf("pnl above strike = %v, want flat cap %v", above, got)
	}
	if far := in.pnlAt(20000); !almostEqual(far, got) {
		t.Errorf("pnl far above strike = %v, want flat cap %v", far, got)
	}
}

// When the short calls outnumber the futures the uncovered portion keeps
// losing above the strike instead of capping flat.
func TestCoveredCallPartialCoverDeclines(t *testing.T) {
	in, err := resolveCoveredCall(Params{
		"futuresPrice":   18000,
		"callStrike":     18500,
		"premium":        200,
		"futuresLotSize": 25,
		"callLotSize":    50,
	}, 18000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	atStrike := in.pnlAt(18500)
	above := in.pnlAt(18600)
	// futures +100*25, short call -100*50: net -2500 per 100 points.
	if !almostEqual(above, atStrike-2500) {
		t.Errorf("pnl above strike = %v, want %v", above, atStrike-2500)
	}
}

func TestLongStraddleAtStrike(t *testing.T) {
	in, err := resolveLongStraddle(Params{
		"strike":      18000,
		"callPremium": 300,
		"putPremium":  300,
		"lotSize":     50,
	}, 18000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := in.pnlAt(18000); !almostEqual(got, -30000) {
		t.Fatalf("pnl at strike = %v, want -30000", got)
	}
}

func TestDefaultsMatchRecords(t *testing.T) {
	const u = 18000.0

	t.Run("covered-call", func(t *testing.T) {
		in, err := resolveCoveredCall(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != coveredCallDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, coveredCallDefaults(u))
		}
	})
	t.Run("bull-call-spread", func(t *testing.T) {
		in, err := resolveBullCallSpread(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != bullCallSpreadDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, bullCallSpreadDefaults(u))
		}
	})
	t.Run("iron-condor", func(t *testing.T) {
		in, err := resolveIronCondor(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != ironCondorDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, ironCondorDefaults(u))
		}
	})
	t.Run("long-straddle", func(t *testing.T) {
		in, err := resolveLongStraddle(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != longStraddleDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, longStraddleDefaults(u))
		}
	})
	t.Run("protective-put", func(t *testing.T) {
		in, err := resolveProtectivePut(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != protectivePutDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, protectivePutDefaults(u))
		}
	})
	t.Run("butterfly-spread", func(t *testing.T) {
		in, err := resolveButterflySpread(Params{}, u)
		if err != nil {
			t.Fatal(err)
		}
		if in != butterflySpreadDefaults(u) {
			t.Errorf("resolved %+v, want defaults %+v", in, butterflySpreadDefaults(u))
		}
	})
}

// Parameters arrive from JSON either as numbers or as strings; both must
// resolve the same way.
func TestStringParamsParse(t *testing.T) {
	fromStrings, err := resolveCoveredCall(Params{
		"futuresPrice": "18000",
		"callStrike":   "18500",
		"premium":      "200",
	}, 18000)
	if err != nil {
		t.Fatalf("resolve string params: %v", err)
	}
	fromNumbers, err := resolveCoveredCall(Params{
		"futuresPrice": 18000.0,
		"callStrike":   18500.0,
		"premium":      200.0,
	}, 18000)
	if err != nil {
		t.Fatalf("resolve numeric params: %v", err)
	}
	if fromStrings != fromNumbers {
		t.Errorf("string params resolved %+v, numeric resolved %+v", fromStrings, fromNumbers)
	}
}

func TestMalformedParameter(t *testing.T) {
	_, err := resolveLongStraddle(Params{"strike": "not-a-number"}, 18000)
	if err == nil {
		t.Fatal("expected error for non-numeric strike")
	}
	var malformed *MalformedParameterError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedParameterError, got %T", err)
	}
	if malformed.Key != "strike" {
		t.Errorf("error names key %q, want strike", malformed.Key)
	}
}

// Every fixed strategy must be continuous at its strikes: the tie-break puts
// the boundary on the not-breached branch, so approaching from below must
// converge to the value at the strike.
func TestBoundaryContinuity(t *testing.T) {
	const u = 18000.0
	const eps = 1e-7

	type pnlFunc func(price float64) float64

	cases := []struct {
		name    string
		pnlAt   pnlFunc
		strikes []float64
	}{
		{"covered-call", mustCoveredCall(t, u).pnlAt, []float64{u + 500}},
		{"bull-call-spread", mustBullCallSpread(t, u).pnlAt, []float64{u, u + 1000}},
		// The iron condor formula is only continuous at the short strikes;
		// the long strikes jump by the wing width (see TestIronCondorRegions).
		{"iron-condor", mustIronCondor(t, u).pnlAt, []float64{u - 500, u + 500}},
		{"long-straddle", mustLongStraddle(t, u).pnlAt, []float64{u}},
		{"protective-put", mustProtectivePut(t, u).pnlAt, []float64{u - 500}},
		{"butterfly-spread", mustButterflySpread(t, u).pnlAt, []float64{u - 500, u, u + 500}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, strike := range tc.strikes {
				at := tc.pnlAt(strike)
				below := tc.pnlAt(strike - eps)
				above := tc.pnlAt(strike + eps)
				// Lot sizes scale the discontinuity, so allow eps * lot.
				tol := eps * 1000
				if math.Abs(at-below) > tol {
					t.Errorf("jump below strike %v: %v vs %v", strike, below, at)
				}
				if math.Abs(at-above) > tol {
					t.Errorf("jump above strike %v: %v vs %v", strike, above, at)
				}
			}
		})
	}
}

func TestIronCondorRegions(t *testing.T) {
	in := mustIronCondor(t, 18000)

	// Flat max profit between the short strikes.
	if got := in.pnlAt(18000); !almostEqual(got, 100*50) {
		t.Errorf("pnl at center = %v, want %v", got, 100*50)
	}
	if got := in.pnlAt(17500); !almostEqual(got, 100*50) {
		t.Errorf("pnl at put sell strike = %v, want %v", got, 100*50)
	}

	// Between the strikes of the put wing the short put leaks value.
	if got := in.pnlAt(17000); !almostEqual(got, (100.0-500.0)*50) {
		t.Errorf("pnl at put buy strike = %v, want %v", got, (100.0-500.0)*50)
	}

	// Beyond the long strikes the documented formula subtracts the long leg
	// minus the short leg, which pins the curve at netPremium plus the wing
	// width. Locked in on purpose: callers chart exactly this shape.
	pinned := (100.0 + 500.0) * 50
	if got := in.pnlAt(15000); !almostEqual(got, pinned) {
		t.Errorf("pnl deep below = %v, want %v", got, pinned)
	}
	if got := in.pnlAt(21000); !almostEqual(got, pinned) {
		t.Errorf("pnl deep above = %v, want %v", got, pinned)
	}
}

func TestButterflyPeakAtMiddleStrike(t *testing.T) {
	in := mustButterflySpread(t, 18000)

	peak := in.pnlAt(18000)
	for _, price := range []float64{16000, 17500, 17900, 18100, 18500, 20000} {
		if in.pnlAt(price) > peak+1e-9 {
			t.Errorf("pnl at %v exceeds middle-strike peak %v", price, peak)
		}
	}
}

func mustCoveredCall(t *testing.T, u float64) coveredCallInputs {
	t.Helper()
	in, err := resolveCoveredCall(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func mustBullCallSpread(t *testing.T, u float64) bullCallSpreadInputs {
	t.Helper()
	in, err := resolveBullCallSpread(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func mustIronCondor(t *testing.T, u float64) ironCondorInputs {
	t.Helper()
	in, err := resolveIronCondor(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func mustLongStraddle(t *testing.T, u float64) longStraddleInputs {
	t.Helper()
	in, err := resolveLongStraddle(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func mustProtectivePut(t *testing.T, u float64) protectivePutInputs {
	t.Helper()
	in, err := resolveProtectivePut(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

func mustButterflySpread(t *testing.T, u float64) butterflySpreadInputs {
	t.Helper()
	in, err := resolveButterflySpread(Params{}, u)
	if err != nil {
		t.Fatal(err)
	}
	return in
}
