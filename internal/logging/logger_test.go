package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readLogEntries(t *testing.T, dir string) []map[string]any {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, "flowdeck.log"))
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}

	logger.Info("instance list loaded", "count", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	entries := readLogEntries(t, dir)
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0]["msg"] != "instance list loaded" {
		t.Errorf("msg = %v, want instance list loaded", entries[0]["msg"])
	}
	if entries[0]["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entries[0]["count"])
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("also kept")
	_ = logger.Close()

	entries := readLogEntries(t, dir)
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
}

func TestChildLoggerAttributes(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}

	child := logger.WithServer("http://localhost:8090").WithInstance("alpha").WithLoadCycle(2)
	child.Info("instance detail arrived")

	// The parent is unaffected by child attributes.
	logger.Info("plain entry")
	_ = logger.Close()

	entries := readLogEntries(t, dir)
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}

	withAttrs := entries[0]
	if withAttrs["server"] != "http://localhost:8090" {
		t.Errorf("server = %v, want base URL", withAttrs["server"])
	}
	if withAttrs["instance"] != "alpha" {
		t.Errorf("instance = %v, want alpha", withAttrs["instance"])
	}
	if withAttrs["load_cycle"] != float64(2) {
		t.Errorf("load_cycle = %v, want 2", withAttrs["load_cycle"])
	}

	plain := entries[1]
	if _, ok := plain["instance"]; ok {
		t.Error("parent logger inherited child attribute")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NopLogger()
	// Must not panic and must be closeable.
	logger.Info("discarded", "key", "value")
	if err := logger.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
