package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "")
	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low levels leaked through: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown") || !strings.Contains(out, "[ERROR] shown too") {
		t.Errorf("missing expected lines: %q", out)
	}
}

func TestPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "sketch")
	log.Info("started")
	if !strings.Contains(buf.String(), "sketch: started") {
		t.Errorf("missing prefix: %q", buf.String())
	}
}

func TestWithPrefixChains(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "sketch").WithPrefix("repl")
	log.Info("ready")
	if !strings.Contains(buf.String(), "sketch/repl: ready") {
		t.Errorf("missing chained prefix: %q", buf.String())
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, "").Info("drew %d of %d", 1, 3)
	if !strings.Contains(buf.String(), "drew 1 of 3") {
		t.Errorf("formatting lost: %q", buf.String())
	}
}
