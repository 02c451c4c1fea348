package calculator

import "CoinChart/internal/model"

// RSIPeriod is the lookback used for the analysis tab RSI.
const RSIPeriod = 14

// Summarize reduces a series into the figures shown on the statistics and
// analysis tabs. movingPeriod is clamped to the series length.
func Summarize(series model.Series, movingPeriod int) (*model.SeriesStats, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	high, _ := HighestPrice(series)
	low, _ := LowestPrice(series)
	last := series[len(series)-1]
	change, pct, _ := Change(series)

	prices := series.Prices()
	avgPrice, _ := Mean(prices)

	volumes := series.Volumes()
	total := 0.0
	for _, v := range volumes {
		total += v
	}

	pos, err := Position(last.Price, high.Price, low.Price)
	if err != nil {
		return nil, err
	}

	if movingPeriod <= 0 || movingPeriod > len(prices) {
		movingPeriod = len(prices)
	}
	ma, err := SMA(prices, movingPeriod)
	if err != nil {
		return nil, err
	}

	rsi, err := RSI(prices, RSIPeriod)
	if err != nil {
		return nil, err
	}

	return &model.SeriesStats{
		Count:        len(series),
		First:        series[0],
		Last:         last,
		Highest:      high,
		Lowest:       low,
		AvgPrice:     avgPrice,
		Change:       change,
		ChangePct:    pct,
		TotalVolume:  total,
		AvgVolume:    total / float64(len(volumes)),
		Position:     pos,
		MovingAvg:    ma,
		MovingPeriod: movingPeriod,
		RSI:          rsi,
		RSIPeriod:    RSIPeriod,
	}, nil
}
