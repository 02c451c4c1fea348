package generator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"CoinChart/internal/model"
)

// Defaults for the synthetic BTC/USD walk.
const (
	DefaultStartPrice   = 63000.0
	DefaultStartVolume  = 1000.0
	DefaultPointsPerDay = 4
	DefaultPriceFloor   = 60000.0
	DefaultVolumeFloor  = 100.0
	DefaultMaxStep      = 100.0

	// MaxPointsPerDay is one sample per minute.
	MaxPointsPerDay = 24 * 60
	// MaxDays caps a single run at ten years of samples.
	MaxDays = 3650
)

// Config parameterises the random walk.
type Config struct {
	StartPrice   float64
	StartVolume  float64
	PointsPerDay int
	PriceFloor   float64
	VolumeFloor  float64
	MaxStep      float64 // each step moves by a uniform value in [-MaxStep, +MaxStep)
}

// DefaultConfig returns the walk used by the dashboard.
func DefaultConfig() Config {
	return Config{
		StartPrice:   DefaultStartPrice,
		StartVolume:  DefaultStartVolume,
		PointsPerDay: DefaultPointsPerDay,
		PriceFloor:   DefaultPriceFloor,
		VolumeFloor:  DefaultVolumeFloor,
		MaxStep:      DefaultMaxStep,
	}
}

// Validate checks that the walk parameters are usable.
func (c Config) Validate() error {
	if c.PointsPerDay <= 0 {
		return errors.New("points_per_day must be positive")
	}
	if c.PointsPerDay > MaxPointsPerDay {
		return fmt.Errorf("points_per_day must be at most %d, got %d", MaxPointsPerDay, c.PointsPerDay)
	}
	if c.StartPrice <= 0 || c.StartVolume <= 0 {
		return errors.New("start price and volume must be positive")
	}
	if c.PriceFloor <= 0 || c.VolumeFloor <= 0 {
		return errors.New("price and volume floors must be positive")
	}
	if c.MaxStep < 0 || math.IsNaN(c.MaxStep) {
		return errors.New("max_step must not be negative")
	}
	return nil
}

// Step is the spacing between two consecutive samples.
func (c Config) Step() time.Duration {
	return 24 * time.Hour / time.Duration(c.PointsPerDay)
}

// Generator produces synthetic price/volume series ending near "now".
type Generator struct {
	cfg    Config
	source Source
	now    func() time.Time
}

// Option customises a Generator.
type Option func(*Generator)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.source = src }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator after validating cfg.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	g := &Generator{cfg: cfg, source: NewRandSource(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		return nil, errors.New("generator config: nil random source")
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g, nil
}

// Config returns the walk parameters.
func (g *Generator) Config() Config { return g.cfg }

// Len is the number of samples Generate returns for the given day count.
func (g *Generator) Len(days int) int {
	return clampDays(days) * g.cfg.PointsPerDay
}

// clampDays bounds days to [0, MaxDays].
func clampDays(days int) int {
	return min(max(days, 0), MaxDays)
}

// Generate walks price and volume for days*PointsPerDay steps. Timestamps
// ascend by one step and the last one sits one step before now. A day count
// of zero or less yields an empty series; more than MaxDays is cut to MaxDays.
func (g *Generator) Generate(days int) model.Series {
	days = clampDays(days)
	n := g.Len(days)
	series := make(model.Series, 0, n)
	if n == 0 {
		return series
	}

	step := g.cfg.Step()
	start := g.now().Add(-time.Duration(days) * 24 * time.Hour)
	price := g.cfg.StartPrice
	volume := g.cfg.StartVolume

	for i := 0; i < n; i++ {
		price += g.delta()
		volume = math.Max(g.cfg.VolumeFloor, volume+g.delta())
		series = append(series, model.Sample{
			Time:   start.Add(time.Duration(i) * step),
			Price:  math.Max(price, g.cfg.PriceFloor),
			Volume: volume,
		})
	}
	return series
}

func (g *Generator) delta() float64 {
	return g.source.Float64()*2*g.cfg.MaxStep - g.cfg.MaxStep
}
