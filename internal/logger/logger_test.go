package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"CoinChart/internal/config"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log, closer, err := New(config.LoggingConfig{Level: "warn", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stderr.Stat(); err != nil {
		t.Errorf("closing a stderr logger must leave stderr open: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter, got %T", log.Formatter)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coinchart.log")
	log, closer, err := New(config.LoggingConfig{Level: "info", Format: "text", Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	WithComponent(log, "test").Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closer.Close(); err == nil {
		t.Error("expected the log file to be closed already")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "component=test") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("file output should not carry colour codes")
	}
}
