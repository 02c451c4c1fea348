package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"CoinChart/internal/logger"
)

type countingRefresher struct {
	n atomic.Int32
}

func (c *countingRefresher) Refresh() { c.n.Add(1) }

func TestRegister_InvalidSpec(t *testing.T) {
	s := NewScheduler(&countingRefresher{}, logger.Discard())
	if err := s.Register("every now and then"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
	// Five-field specs are rejected because the seconds field is required.
	if err := s.Register("* * * * *"); err == nil {
		t.Error("expected error for spec without seconds")
	}
}

func TestRunNow(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, logger.Discard())
	var hooked atomic.Int32
	s.OnRefresh = func() { hooked.Add(1) }

	s.RunNow()
	if r.n.Load() != 1 || hooked.Load() != 1 {
		t.Errorf("expected one refresh and one hook call, got %d and %d", r.n.Load(), hooked.Load())
	}
}

func TestStart_FiresEverySecond(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, logger.Discard())
	if err := s.Register("* * * * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	deadline := time.Now().Add(3 * time.Second)
	for r.n.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	s.Stop()
	if r.n.Load() == 0 {
		t.Error("expected at least one scheduled refresh")
	}
}
