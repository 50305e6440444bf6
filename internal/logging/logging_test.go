package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "screeneval.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", data)
	}
}

func TestBuildRequestMessageDefaults(t *testing.T) {
	msg := buildRequestMessage(" eval->llm ", " ", "TC-7", map[string]any{"ok": true})
	if !strings.Contains(msg, "[EVAL->LLM]") {
		t.Fatalf("expected uppercased direction, got: %s", msg)
	}
	if !strings.Contains(msg, "model=unknown") {
		t.Fatalf("expected default model, got: %s", msg)
	}
	if !strings.Contains(msg, "case=TC-7") {
		t.Fatalf("expected case identifier, got: %s", msg)
	}
	if !strings.Contains(msg, `payload={"ok":true}`) {
		t.Fatalf("expected payload json, got: %s", msg)
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: got %q", got)
	}
	if got := formatPayload("  "); got != `""` {
		t.Fatalf("blank string payload: got %q", got)
	}
	if got := formatPayload([]byte(nil)); got != "[]" {
		t.Fatalf("empty bytes payload: got %q", got)
	}
	if got := formatPayload(testStringer("abc")); got != "abc" {
		t.Fatalf("stringer payload: got %q", got)
	}
	if got := formatPayload([]byte(`{"a":1}`)); got != `{"a":1}` {
		t.Fatalf("bytes payload: got %q", got)
	}
}
