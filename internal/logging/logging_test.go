package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunLoggerToFile verifies JSON entries carry the run id
func TestRunLoggerToFile(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	path := filepath.Join(t.TempDir(), "economy.log")
	if err := Initialize(Config{Level: "info", Format: "json", Output: path}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	ForRun("run-42").Info("chart skipped")
	ForRun("run-42").Debug("below level")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one entry, got %d:\n%s", len(lines), data)
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry[FieldRunID] != "run-42" || entry["msg"] != "chart skipped" {
		t.Errorf("entry = %v", entry)
	}
}

// TestInitializeRejectsBadConfig verifies the previous logger survives
func TestInitializeRejectsBadConfig(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	for _, cfg := range []Config{
		{Level: "loud"},
		{Level: "info", Format: "xml"},
		{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "economy.log")},
	} {
		if err := Initialize(cfg); err == nil {
			t.Errorf("Initialize(%+v) succeeded", cfg)
		}
		if Logger != prev {
			t.Errorf("logger replaced by failed Initialize(%+v)", cfg)
		}
	}
}

func TestDiscard(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	if err := Initialize(Config{Level: "debug", Output: "discard"}); err != nil {
		t.Fatal(err)
	}
	if Logger.Core().Enabled(-1) {
		t.Error("discard logger accepts entries")
	}
}
