// internal/screening/classifier_test.go
package screening

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/screenlab/screeneval/internal/appconfig"
)

func testConfig(baseURL string) *appconfig.Config {
	return &appconfig.Config{BaseURL: baseURL, Timeout: 5}
}

// TestClassifyRequestShape verifies the single call carries the protocol as
// the system message, the case fields in the user message, the configured
// model and temperature, and the strict-JSON response directive.
func TestClassifyRequestShape(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	var capturedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		capturedAuth = r.Header.Get("Authorization")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		capturedBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"MatchOutcome\":\"False Match\",\"Confidence\":\"High\",\"Reason\":{\"TypeValidation\":\"Pass\",\"NormalizationSteps\":\"n/a\",\"AppliedCriteria\":\"type mismatch\"},\"RecommendedAction\":\"Allow & Log\"}"}}]}`))
	}))
	defer server.Close()

	classifier := NewClassifier(testConfig(server.URL), "gsk_test")
	result, raw, err := classifier.Classify(context.Background(), "Wire to Acme Corp", "ACME Corporation", "Entity")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if capturedAuth != "Bearer gsk_test" {
		t.Fatalf("unexpected Authorization header: %q", capturedAuth)
	}

	var payload map[string]any
	if err := json.Unmarshal(capturedBody, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["model"] != "llama3-70b-8192" {
		t.Fatalf("expected default model, got %v", payload["model"])
	}
	if temp, ok := payload["temperature"].(float64); !ok || temp != 0.1 {
		t.Fatalf("expected temperature 0.1, got %v", payload["temperature"])
	}
	format, ok := payload["response_format"].(map[string]any)
	if !ok || format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", payload["response_format"])
	}
	messages, ok := payload["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected two messages, got %v", payload["messages"])
	}
	system := messages[0].(map[string]any)
	if system["role"] != "system" || !strings.Contains(system["content"].(string), "Matching Protocol") {
		t.Fatalf("system message does not carry the protocol: %v", system)
	}
	user := messages[1].(map[string]any)
	content := user["content"].(string)
	for _, want := range []string{"Wire to Acme Corp", "ACME Corporation", "Entity"} {
		if !strings.Contains(content, want) {
			t.Fatalf("user message missing %q: %s", want, content)
		}
	}

	if result.Outcome != "False Match" || result.Confidence != "High" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Reason == nil || result.Reason.AppliedCriteria != "type mismatch" {
		t.Fatalf("unexpected reason: %+v", result.Reason)
	}
	if err := ValidateResponse(raw); err != nil {
		t.Fatalf("raw reply should validate: %v", err)
	}
}

// TestClassifyUnparsableContent verifies a syntactically invalid reply body
// surfaces as ErrUnparsableResponse.
func TestClassifyUnparsableContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"I am sorry, I cannot answer that."}}]}`))
	}))
	defer server.Close()

	classifier := NewClassifier(testConfig(server.URL), "gsk_test")
	_, _, err := classifier.Classify(context.Background(), "a", "b", "Person")
	if !errors.Is(err, ErrUnparsableResponse) {
		t.Fatalf("expected ErrUnparsableResponse, got %v", err)
	}
}

// TestClassifyServiceError verifies a non-200 status is returned as an error
// carrying the status and body.
func TestClassifyServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	classifier := NewClassifier(testConfig(server.URL), "gsk_test")
	_, _, err := classifier.Classify(context.Background(), "a", "b", "Person")
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("error missing status or body: %v", err)
	}
}

// TestClassifyEmptyChoices verifies an envelope without choices is an error.
func TestClassifyEmptyChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	classifier := NewClassifier(testConfig(server.URL), "gsk_test")
	_, _, err := classifier.Classify(context.Background(), "a", "b", "Person")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("expected no-choices error, got %v", err)
	}
}

// TestClassifyHonorsContext verifies an already-canceled context aborts the
// request instead of stalling the run.
func TestClassifyHonorsContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	classifier := NewClassifier(testConfig(server.URL), "gsk_test")
	_, _, err := classifier.Classify(ctx, "a", "b", "Person")
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}
