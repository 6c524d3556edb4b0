package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "json", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", l.GetLevel())
	}

	l.WithField("event_id", 3).Info("event created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q", buf.String())
	}
	if entry["msg"] != "event created" || entry["event_id"].(float64) != 3 {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", "text", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New("loud", "text", &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for unknown level")
	}
	if _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
