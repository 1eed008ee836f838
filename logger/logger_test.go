package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "Production", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", mode, err)
		}
		l.With("mode", mode).Debug("hello")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("dropped", "k", "v")
	l.Warn("dropped")
	l.Error("dropped")
	l.Sync()
}

func TestLevelsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	child := l.With("request", "abc")
	child.Debug("d")
	child.Info("i", "status", 200)
	child.Warn("w")
	child.Error("e")

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
		if e.ContextMap()["request"] != "abc" {
			t.Errorf("entry %d missing With field: %v", i, e.ContextMap())
		}
	}
	if got := entries[1].ContextMap()["status"]; got != int64(200) {
		t.Errorf("status = %v, want 200", got)
	}
}
