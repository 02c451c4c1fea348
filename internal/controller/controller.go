package controller

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"CoinChart/internal/model"
)

// Generator is the part of generator.Generator the controller needs.
type Generator interface {
	Generate(days int) model.Series
}

// Options tune how ranges map to day counts.
type Options struct {
	// DayMultiplier scales the 1-based range ordinal into days.
	// 7 reproduces the dashboard; 1 uses the ordinal directly.
	DayMultiplier int
	// InitialDays sizes the series shown before any range change.
	InitialDays  int
	InitialRange model.Range
	Listeners    []Listener
	Logger       logrus.FieldLogger
}

// Controller owns the selected range and the series generated for it.
// One controller backs exactly one dashboard view.
type Controller struct {
	mu        sync.Mutex
	gen       Generator
	opts      Options
	rng       model.Range
	series    model.Series
	version   uint64
	listeners []Listener
	log       logrus.FieldLogger
}

// New creates a Controller on the initial range. On the default range the
// first series spans InitialDays days; any other range starts with the
// series that range requests, so range and series always agree.
func New(gen Generator, opts Options) (*Controller, error) {
	if gen == nil {
		return nil, errors.New("controller: nil generator")
	}
	if opts.DayMultiplier == 0 {
		opts.DayMultiplier = 7
	}
	if opts.DayMultiplier < 0 || opts.DayMultiplier > model.MaxDayMultiplier {
		return nil, fmt.Errorf("controller: day multiplier must be in 1..%d, got %d", model.MaxDayMultiplier, opts.DayMultiplier)
	}
	if opts.InitialDays == 0 {
		opts.InitialDays = 7
	}
	if opts.InitialRange == "" {
		opts.InitialRange = model.DefaultRange
	}
	if !opts.InitialRange.Valid() {
		return nil, fmt.Errorf("controller: %w: %q", model.ErrInvalidRange, opts.InitialRange)
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Controller{
		gen:       gen,
		opts:      opts,
		rng:       opts.InitialRange,
		listeners: append([]Listener(nil), opts.Listeners...),
		log:       log,
	}
	days := opts.InitialDays
	if opts.InitialRange != model.DefaultRange {
		days = c.Days(opts.InitialRange)
	}
	c.series = gen.Generate(days)
	return c, nil
}

// Days returns the day count a range requests, or 0 for unknown ranges.
func (c *Controller) Days(r model.Range) int {
	idx := r.Index()
	if idx < 0 {
		return 0
	}
	return (idx + 1) * c.opts.DayMultiplier
}

// ChangeRange regenerates the series for r and swaps it in. An unknown
// range leaves the state untouched and returns model.ErrInvalidRange.
func (c *Controller) ChangeRange(r model.Range) error {
	if !r.Valid() {
		c.log.WithField("range", string(r)).Warn("ignoring unknown range")
		return fmt.Errorf("%w: %q", model.ErrInvalidRange, r)
	}
	c.swap(&r)
	return nil
}

// Refresh regenerates the series for the current range.
func (c *Controller) Refresh() {
	c.swap(nil)
}

// swap generates and installs a new series under the lock, so concurrent
// callers apply in order and the last one wins. A nil target keeps the
// current range.
func (c *Controller) swap(target *model.Range) {
	c.mu.Lock()
	r := c.rng
	if target != nil {
		r = *target
	}
	days := c.Days(r)
	series := c.gen.Generate(days)
	c.rng = r
	c.series = series
	c.version++
	snap := c.snapshotLocked()
	listeners := c.listeners
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"range":   string(r),
		"days":    days,
		"samples": len(series),
		"version": snap.Version,
	}).Debug("series regenerated")

	for _, l := range listeners {
		l.OnChange(snap)
	}
}

// Series returns the current series. Callers must not modify it.
func (c *Controller) Series() model.Series {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.series
}

// Range returns the current range.
func (c *Controller) Range() model.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng
}

// Snapshot returns range, series and version as one consistent read.
func (c *Controller) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() model.Snapshot {
	return model.Snapshot{Range: c.rng, Series: c.series, Version: c.version}
}

// Subscribe adds a listener notified after every regeneration.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(append([]Listener(nil), c.listeners...), l)
}
