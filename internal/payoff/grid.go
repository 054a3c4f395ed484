// Package payoff computes profit-and-loss curves for futures/options
// strategies over a band of underlying prices.
//
// The package is pure: no I/O, no shared state. Every calculation is a
// function of its inputs, so callers may invoke it concurrently.
package payoff

import "math"

// DefaultGridPoints is the curve cardinality used by all strategy
// calculations.
const DefaultGridPoints = 50

// Point is one sample of a payoff curve. Price and PNL are each rounded to
// two decimals independently.
type Point struct {
	Price float64 `json:"price"`
	PNL   float64 `json:"pnl"`
}

// PriceGrid returns `points` evenly spaced prices covering the closed band
// referencePrice ± rangePercent%. The sequence is strictly increasing for any
// positive reference price and range.
func PriceGrid(referencePrice, rangePercent float64, points int) ([]float64, error) {
	if points < 2 {
		return nil, &GridConfigError{Points: points}
	}

	minPrice := referencePrice * (1 - rangePercent/100)
	maxPrice := referencePrice * (1 + rangePercent/100)
	step := (maxPrice - minPrice) / float64(points-1)

	prices := make([]float64, points)
	for i := range prices {
		prices[i] = minPrice + step*float64(i)
	}
	return prices, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// curve samples pnlAt over the default price grid and rounds each sample.
func curve(underlyingPrice, rangePercent float64, pnlAt func(price float64) float64) ([]Point, error) {
	prices, err := PriceGrid(underlyingPrice, rangePercent, DefaultGridPoints)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(prices))
	for _, price := range prices {
		points = append(points, Point{
			Price: round2(price),
			PNL:   round2(pnlAt(price)),
		})
	}
	return points, nil
}
