package model

import (
	"errors"
	"testing"
)

func TestRangeIndex(t *testing.T) {
	want := []Range{"1d", "3d", "1w", "1m", "6m", "1y", "max"}
	for i, r := range want {
		if got := r.Index(); got != i {
			t.Errorf("%s: expected index %d, got %d", r, i, got)
		}
	}
	if Range("2w").Valid() {
		t.Error("2w should not be a valid range")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
		fail bool
	}{
		{"1w", Range1W, false},
		{" MAX ", RangeMax, false},
		{"1M", Range1M, false},
		{"", "", true},
		{"week", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if tt.fail {
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParseRange(%q): expected ErrInvalidRange, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRange(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("Statistics")
	if err != nil || tab != TabStatistics {
		t.Errorf("ParseTab(Statistics) = %q, %v", tab, err)
	}
	if tab.Title() != "Statistics" {
		t.Errorf("expected title Statistics, got %q", tab.Title())
	}
	if _, err := ParseTab("orders"); !errors.Is(err, ErrInvalidTab) {
		t.Errorf("expected ErrInvalidTab, got %v", err)
	}
}

func TestSeriesColumns(t *testing.T) {
	s := Series{{Price: 60000, Volume: 100}, {Price: 61000, Volume: 200}}
	if p := s.Prices(); len(p) != 2 || p[1] != 61000 {
		t.Errorf("unexpected prices %v", p)
	}
	if v := s.Volumes(); len(v) != 2 || v[0] != 100 {
		t.Errorf("unexpected volumes %v", v)
	}
}
