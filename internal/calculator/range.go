package calculator

import (
	"errors"

	"CoinChart/internal/model"
)

// ErrEmptySeries is returned by every reducer given no samples.
var ErrEmptySeries = errors.New("empty series")

// HighestPrice returns the sample with the largest price. Ties go to the
// earliest sample.
func HighestPrice(series model.Series) (model.Sample, error) {
	if len(series) == 0 {
		return model.Sample{}, ErrEmptySeries
	}
	best := series[0]
	for _, s := range series[1:] {
		if s.Price > best.Price {
			best = s
		}
	}
	return best, nil
}

// LowestPrice returns the sample with the smallest price. Ties go to the
// earliest sample.
func LowestPrice(series model.Series) (model.Sample, error) {
	if len(series) == 0 {
		return model.Sample{}, ErrEmptySeries
	}
	best := series[0]
	for _, s := range series[1:] {
		if s.Price < best.Price {
			best = s
		}
	}
	return best, nil
}

// Last returns the most recent sample.
func Last(series model.Series) (model.Sample, error) {
	if len(series) == 0 {
		return model.Sample{}, ErrEmptySeries
	}
	return series[len(series)-1], nil
}

// Change returns the move from the first to the last price, absolute and as
// a percentage of the first price.
func Change(series model.Series) (abs, pct float64, err error) {
	if len(series) == 0 {
		return 0, 0, ErrEmptySeries
	}
	first := series[0].Price
	abs = series[len(series)-1].Price - first
	if first != 0 {
		pct = abs / first * 100
	}
	return abs, pct, nil
}

// Position places the last price in the band between the lowest and highest
// prices of the series: 0 at the low, 1 at the high. A flat band is 0.5 and
// prices outside the band are pinned to its edges.
func Position(current, high, low float64) (float64, error) {
	switch {
	case high < low:
		return 0, errors.New("high must be >= low")
	case high == low:
		return 0.5, nil
	}
	return min(max((current-low)/(high-low), 0), 1), nil
}
