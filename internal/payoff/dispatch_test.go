package payoff

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCalculateUnknownStrategy(t *testing.T) {
	_, err := Calculate("not-a-strategy", Params{}, 18000, 30, nil)
	if err == nil {
		t.Fatal("expected error for unknown strategy type")
	}
	var unknown *UnknownStrategyError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownStrategyError, got %T", err)
	}
	if !strings.Contains(err.Error(), "not-a-strategy") {
		t.Errorf("error should name the offending type: %v", err)
	}
}

func TestCalculateNilParams(t *testing.T) {
	withNil, err := Calculate(LongStraddle, nil, 18000, 30, nil)
	if err != nil {
		t.Fatalf("nil params: %v", err)
	}
	withEmpty, err := Calculate(LongStraddle, Params{}, 18000, 30, nil)
	if err != nil {
		t.Fatalf("empty params: %v", err)
	}
	for i := range withNil {
		if withNil[i] != withEmpty[i] {
			t.Fatalf("point %d: nil params %+v, empty params %+v", i, withNil[i], withEmpty[i])
		}
	}
}

func TestCalculateCustomStrategy(t *testing.T) {
	// No legs: defined empty result, never an error.
	points, err := Calculate(CustomStrategy, nil, 18000, 30, nil)
	if err != nil {
		t.Fatalf("custom with no legs: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected empty curve, got %d points", len(points))
	}

	legs := []Leg{{Type: LegFutures, Action: ActionBuy, LotSize: 50, EntryPrice: f(18000)}}
	points, err = Calculate(CustomStrategy, nil, 18000, 30, legs)
	if err != nil {
		t.Fatalf("custom with legs: %v", err)
	}
	if len(points) != DefaultGridPoints {
		t.Fatalf("expected %d points, got %d", DefaultGridPoints, len(points))
	}
}

func TestCalculateCurveShape(t *testing.T) {
	fixed := []StrategyType{
		CoveredCall, BullCallSpread, IronCondor,
		LongStraddle, ProtectivePut, ButterflySpread,
	}

	for _, st := range fixed {
		t.Run(string(st), func(t *testing.T) {
			points, err := Calculate(st, nil, 18000, 30, nil)
			if err != nil {
				t.Fatalf("Calculate: %v", err)
			}
			if len(points) != DefaultGridPoints {
				t.Fatalf("got %d points, want %d", len(points), DefaultGridPoints)
			}
			if !almostEqual(points[0].Price, 12600) {
				t.Errorf("first price = %v, want 12600", points[0].Price)
			}
			if !almostEqual(points[len(points)-1].Price, 23400) {
				t.Errorf("last price = %v, want 23400", points[len(points)-1].Price)
			}
			for i, p := range points {
				if i > 0 && points[i-1].Price >= p.Price {
					t.Fatalf("prices not strictly increasing at %d", i)
				}
				if !roundedTo2(p.Price) || !roundedTo2(p.PNL) {
					t.Errorf("point %d not rounded to 2 decimals: %+v", i, p)
				}
			}
		})
	}
}

func TestCatalogCoversAllFixedStrategies(t *testing.T) {
	seen := map[StrategyType]bool{}
	for _, info := range Catalog() {
		seen[info.Type] = true
		if len(info.Parameters) == 0 {
			t.Errorf("%s: catalog entry has no parameters", info.Type)
		}
	}
	for _, st := range []StrategyType{
		CoveredCall, BullCallSpread, IronCondor,
		LongStraddle, ProtectivePut, ButterflySpread,
	} {
		if !seen[st] {
			t.Errorf("catalog missing %s", st)
		}
	}
}

func roundedTo2(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}
