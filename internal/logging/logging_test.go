package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestApplyFileWriterDefaults(t *testing.T) {
	got := applyFileWriterDefaults(FileWriterConfig{MaxBackups: 7})

	if got.MaxSizeMB != DefaultMaxSizeMB {
		t.Errorf("MaxSizeMB = %d, want %d", got.MaxSizeMB, DefaultMaxSizeMB)
	}
	if got.MaxBackups != 7 {
		t.Errorf("MaxBackups = %d, want 7", got.MaxBackups)
	}
	if got.MaxAgeDays != DefaultMaxAgeDays {
		t.Errorf("MaxAgeDays = %d, want %d", got.MaxAgeDays, DefaultMaxAgeDays)
	}
}

func TestNewCoreLevels(t *testing.T) {
	var console, file bytes.Buffer
	core := NewCore(zapcore.InfoLevel, zapcore.AddSync(&console), zapcore.AddSync(&file))

	if core.Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled at info level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at info level")
	}
}

func TestNewTeesConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numring.log")
	var console bytes.Buffer

	logger := New(Config{Debug: true, FilePath: path, Console: &console})
	logger.Debug("render done")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if !strings.Contains(console.String(), "render done") {
		t.Errorf("console = %q, want message", console.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("file entry is not JSON: %v\n%s", err, data)
	}
	if entry[FieldMessage] != "render done" || entry[FieldLevel] != "debug" {
		t.Errorf("file entry = %v", entry)
	}
}

func TestSlogBridge(t *testing.T) {
	var console bytes.Buffer
	logger := New(Config{Console: &console})

	l := Slog(logger)
	l.Debug("hidden")
	l.Info("image loaded", "width", 640)
	_ = logger.Sync()

	out := console.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record leaked at info level: %q", out)
	}
	if !strings.Contains(out, "image loaded") || !strings.Contains(out, "640") {
		t.Errorf("console = %q, want bridged record", out)
	}
}
