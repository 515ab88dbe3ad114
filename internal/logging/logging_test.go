package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "json", "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug().Int("rows", 3).Msg("staging complete")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if entry["message"] != "staging complete" || entry["rows"] != float64(3) || entry["level"] != "debug" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNew_TextHasNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "text", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info().Str("source", "bills.xlsx").Msg("roster loaded")

	out := buf.String()
	if !strings.Contains(out, "roster loaded") || !strings.Contains(out, "source=bills.xlsx") {
		t.Errorf("unexpected console output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output to a buffer is colored: %q", out)
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "json", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug().Msg("row skipped")
	if buf.Len() != 0 {
		t.Errorf("debug logged at default level: %q", buf.String())
	}

	log, err = New(&buf, "json", "loud")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	log.Info().Msg("still works")
	if !strings.Contains(buf.String(), "still works") {
		t.Error("fallback logger dropped info")
	}
}
