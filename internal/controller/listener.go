package controller

import (
	"sync"

	"github.com/sirupsen/logrus"

	"CoinChart/internal/model"
)

// Listener is told about every series swap. It runs on the goroutine that
// changed the range, after the swap is visible. Concurrent swaps may deliver
// snapshots out of order; compare Version to find the newest.
type Listener interface {
	OnChange(snap model.Snapshot)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(snap model.Snapshot)

func (f ListenerFunc) OnChange(snap model.Snapshot) { f(snap) }

// NoopListener ignores all changes.
type NoopListener struct{}

func NewNoopListener() *NoopListener { return &NoopListener{} }

func (n *NoopListener) OnChange(_ model.Snapshot) {}

// LogListener writes one info line per change and skips snapshots older
// than the last one it logged.
type LogListener struct {
	mu   sync.Mutex
	last uint64
	log  logrus.FieldLogger
}

func NewLogListener(log logrus.FieldLogger) *LogListener {
	return &LogListener{log: log}
}

func (l *LogListener) OnChange(snap model.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if snap.Version <= l.last {
		l.log.WithField("version", snap.Version).Debug("skipping stale snapshot")
		return
	}
	l.last = snap.Version

	fields := logrus.Fields{
		"range":   string(snap.Range),
		"samples": len(snap.Series),
		"version": snap.Version,
	}
	if n := len(snap.Series); n > 0 {
		fields["last_price"] = snap.Series[n-1].Price
	}
	l.log.WithFields(fields).Info("range changed")
}
