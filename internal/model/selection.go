package model

import (
	"errors"
	"fmt"
	"strings"
)

// Range is the selected display window.
type Range string

const (
	Range1D  Range = "1d"
	Range3D  Range = "3d"
	Range1W  Range = "1w"
	Range1M  Range = "1m"
	Range6M  Range = "6m"
	Range1Y  Range = "1y"
	RangeMax Range = "max"
)

// DefaultRange is what a fresh view starts on.
const DefaultRange = Range1W

// MaxDayMultiplier bounds days per range ordinal; "max" then spans at most
// 7*365 days.
const MaxDayMultiplier = 365

// ErrInvalidRange is returned for values outside the fixed range set.
var ErrInvalidRange = errors.New("invalid range selection")

// Ranges lists every selectable range in display order. The position of a
// range in this list determines how many days it covers.
var Ranges = []Range{Range1D, Range3D, Range1W, Range1M, Range6M, Range1Y, RangeMax}

// Index returns the position of r in Ranges, or -1.
func (r Range) Index() int {
	for i, v := range Ranges {
		if v == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r belongs to Ranges.
func (r Range) Valid() bool { return r.Index() >= 0 }

func (r Range) String() string { return string(r) }

// ParseRange maps user input such as "1W" to a Range.
func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return r, nil
}

// Tab is one entry of the dashboard tab strip.
type Tab string

const (
	TabSummary    Tab = "summary"
	TabChart      Tab = "chart"
	TabStatistics Tab = "statistics"
	TabAnalysis   Tab = "analysis"
	TabSettings   Tab = "settings"
)

// DefaultTab is the tab a fresh view opens on.
const DefaultTab = TabChart

// ErrInvalidTab is returned for values outside the fixed tab set.
var ErrInvalidTab = errors.New("invalid tab")

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabSummary, TabChart, TabStatistics, TabAnalysis, TabSettings}

// Title is the label shown in the tab strip.
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ParseTab maps user input such as "Statistics" to a Tab.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Tabs {
		if v == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
}
