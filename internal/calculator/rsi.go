package calculator

import "errors"

// RSI reports momentum of the walk as a 0..100 index over the trailing
// period price moves, smoothed the Wilder way. A window shorter than
// period+1 prices, or a walk that never moved, reads as neutral 50.
func RSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) <= period {
		return 50, nil
	}

	n := float64(period)
	var up, down float64
	for i, p := range prices[1:] {
		gain, loss := splitMove(p - prices[i])
		if i < period {
			// seed with the plain mean of the first period moves
			up += gain / n
			down += loss / n
			continue
		}
		up = (up*(n-1) + gain) / n
		down = (down*(n-1) + loss) / n
	}

	switch {
	case up == 0 && down == 0:
		return 50, nil
	case down == 0:
		return 100, nil
	}
	return 100 - 100/(1+up/down), nil
}

// splitMove returns a price move as separate non-negative gain and loss.
func splitMove(move float64) (gain, loss float64) {
	if move > 0 {
		return move, 0
	}
	return 0, -move
}
