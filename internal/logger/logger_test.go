package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below minimum level should be discarded, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages at or above minimum level should be logged, got %q", out)
	}
}

func TestEntryStructure(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("fetched page", Fields{"url": "http://wikicfp.com/cfp", "bytes": 1024})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry is not valid JSON: %v", err)
	}

	if entry["level"] != "INFO" {
		t.Errorf("level = %v, expected INFO", entry["level"])
	}
	if entry["message"] != "fetched page" {
		t.Errorf("message = %v, expected 'fetched page'", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("fields missing from entry: %v", entry)
	}
	if fields["url"] != "http://wikicfp.com/cfp" {
		t.Errorf("fields.url = %v, expected the logged URL", fields["url"])
	}
	if entry["timestamp"] == nil {
		t.Error("entry should carry a timestamp")
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("scrape failed", nil, errTest)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry is not valid JSON: %v", err)
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, expected 'boom'", entry["error"])
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
