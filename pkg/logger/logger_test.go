package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("New(debug) failed: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level not enabled")
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New("chatty")
	if err != nil {
		t.Fatalf("New(chatty) failed: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled at the info fallback")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info level should be enabled")
	}
}
