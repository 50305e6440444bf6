// internal/screening/classifier.go
package screening

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/screenlab/screeneval/internal/appconfig"
	"github.com/screenlab/screeneval/internal/logging"
)

// ErrUnparsableResponse signals a reply body that is not syntactically
// valid JSON. The run continues; the offending case is skipped.
var ErrUnparsableResponse = errors.New("unparsable response")

// Classifier holds the single authenticated client reused for every
// request of a run.
type Classifier struct {
	client      *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	timeout     time.Duration
	debug       bool
}

// NewClassifier constructs a Classifier from the application configuration
// and the environment-resolved credential.
func NewClassifier(cfg *appconfig.Config, apiKey string) *Classifier {
	timeout := cfg.RequestTimeout()
	return &Classifier{
		client: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     cfg.ServiceBaseURL(),
		model:       cfg.ModelID(),
		temperature: cfg.SamplingTemperature(),
		timeout:     timeout,
		debug:       cfg.Debug,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends one case to the chat-completions endpoint and parses the
// reply body into a MatchResult. The raw reply body is returned alongside
// so the caller can run schema validation. No retries, no backoff: a
// transport failure is returned as-is.
func (c *Classifier) Classify(ctx context.Context, transactionData, watchlistEntry, watchlistType string) (*MatchResult, []byte, error) {
	payload := chatRequest{
		Model:          c.model,
		Temperature:    c.temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserMessage(transactionData, watchlistEntry, watchlistType)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	if c.debug {
		logging.LogRequest("EVAL->LLM", c.model, "", body)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	if c.debug {
		logging.LogRequest("LLM->EVAL", c.model, "", respBody)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("groq: /chat/completions returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, nil, fmt.Errorf("groq: could not decode completion envelope: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, nil, fmt.Errorf("groq: completion contained no choices")
	}

	content := []byte(completion.Choices[0].Message.Content)
	var result MatchResult
	if err := json.Unmarshal(content, &result); err != nil {
		logging.LogEvent("Failed to parse JSON response: %v", err)
		return nil, nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}

	return &result, content, nil
}
