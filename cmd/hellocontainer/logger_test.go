package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		infoEnabled  bool
	}{
		{name: "debug", logLevel: "debug", debugEnabled: true, infoEnabled: true},
		{name: "trace maps to debug", logLevel: "trace", debugEnabled: true, infoEnabled: true},
		{name: "info", logLevel: "info", debugEnabled: false, infoEnabled: true},
		{name: "warn", logLevel: "warn", debugEnabled: false, infoEnabled: false},
		{name: "error", logLevel: "error", debugEnabled: false, infoEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.logLevel, "text")
			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, slog.Default().Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoEnabled, slog.Default().Enabled(ctx, slog.LevelInfo))
		})
	}
}
