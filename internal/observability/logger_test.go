package observability

import (
	"testing"

	"go.uber.org/zap"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zap.AtomicLevel
	}{
		{input: "DEBUG", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{input: "debug", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{input: " warn ", want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{input: "ERROR", want: zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{input: "INFO", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{input: "", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{input: "bogus", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got.Level() != tt.want.Level() {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got.Level(), tt.want.Level())
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger() returned nil logger")
	}
	_ = logger.Sync()
}
