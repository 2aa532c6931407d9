package agclog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo, false)
	logger := slog.New(h)

	logger.Info("boot", "rom", "Aurora12")

	got := buf.String()
	if !strings.Contains(got, "boot") || !strings.Contains(got, "Aurora12") {
		t.Errorf("output %q missing message or attribute", got)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelWarn, false)
	logger := slog.New(h)

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected info below the warn threshold to be dropped, got %q", buf.String())
	}

	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("expected warn record to be written")
	}
}

func TestSetDebugSetsDebugFlag(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo, false)
	h.SetDebug(true)

	if !h.debug {
		t.Error("SetDebug(true) did not set the debug flag")
	}
}
