package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		name   string
		level  string
		format string
		want   zapcore.Level
	}{
		{"console_debug", "debug", "console", zapcore.DebugLevel},
		{"json_warn", "warn", "json", zapcore.WarnLevel},
		{"unknown_level", "chatty", "console", zapcore.InfoLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			log, err := NewLogger(c.level, c.format)
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if !log.Core().Enabled(c.want) {
				t.Fatalf("expected %s enabled", c.want)
			}
			if c.want > zapcore.DebugLevel && log.Core().Enabled(c.want-1) {
				t.Fatalf("expected %s disabled", c.want-1)
			}
		})
	}
}

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossroads.log")
	log, err := NewLogger("info", "json", path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("level generated", zap.String("seed", "kontra"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"seed":"kontra"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}
