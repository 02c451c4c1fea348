package model

// SeriesStats holds the reductions shown on the statistics tab.
type SeriesStats struct {
	Count        int
	First        Sample
	Last         Sample
	Highest      Sample
	Lowest       Sample
	AvgPrice     float64
	Change       float64
	ChangePct    float64
	TotalVolume  float64
	AvgVolume    float64
	Position     float64 // 0.0 ~ 1.0, last price within the low/high band
	MovingAvg    float64
	MovingPeriod int
	RSI          float64
	RSIPeriod    int
}
