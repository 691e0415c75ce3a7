package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("skipped", nil)
	if _, err := os.Stat(path); err == nil {
		t.Fatal("expected no log file while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("palette.toggle", map[string]interface{}{"open": true})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", data, err)
	}
	if entry.Event != "palette.toggle" || entry.Payload["open"] != true {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("clipboard unavailable"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "clipboard unavailable") {
		t.Fatalf("expected error text in log, got %q", data)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}
