package model

import "time"

// Sample is one observation of the series.
type Sample struct {
	Time   time.Time `json:"time"`
	Price  float64   `json:"price"`
	Volume float64   `json:"volume"`
}

// Series is an ordered run of samples, oldest first.
type Series []Sample

// Prices extracts the price column.
func (s Series) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, p := range s {
		prices[i] = p.Price
	}
	return prices
}

// Volumes extracts the volume column.
func (s Series) Volumes() []float64 {
	volumes := make([]float64, len(s))
	for i, p := range s {
		volumes[i] = p.Volume
	}
	return volumes
}

// Snapshot is the state a range controller exposes to its consumers.
type Snapshot struct {
	Range   Range
	Series  Series
	Version uint64
}
