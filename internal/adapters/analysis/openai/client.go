// Package openai implements the journal analyzer over the OpenAI Responses API
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "daybook/internal/platform/errors"
	str "daybook/internal/platform/strings"
	"daybook/internal/services/journal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1"

const instructions = `You analyze one personal journal entry with three parts: what the author worked on, what they struggled with, and what they intend to do next.
Reply with a single JSON object and nothing else, shaped exactly as:
{"sentiment": "positive|neutral|negative", "summary": "<about two sentences>", "topics": ["<2 to 4 short topic strings>"]}`

// Config carries OpenAI connection settings
type Config struct {
	// APIKey is the bearer token, required
	APIKey string

	// Model is the model name, defaulted when empty
	Model string

	// BaseURL overrides the API endpoint, for tests and proxies
	BaseURL string

	// Timeout bounds each call end to end
	Timeout time.Duration
}

// Client talks to the Responses API
type Client struct {
	cfg   Config
	httpc *http.Client
}

// New constructs a Client, panics on a missing key since the caller
// selected this provider explicitly
func New(cfg Config) *Client {
	str.MustString(cfg.APIKey, "openai api key")
	if str.IsBlank(cfg.Model) {
		cfg.Model = "gpt-4.1-mini"
	}
	if str.IsBlank(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

// analysisPayload is the strict shape the model is instructed to emit
type analysisPayload struct {
	Sentiment string   `json:"sentiment"`
	Summary   string   `json:"summary"`
	Topics    []string `json:"topics"`
}

// Analyze implements domain.AnalyzerPort
func (c *Client) Analyze(ctx context.Context, work, struggle, intention string) (domain.Analysis, error) {
	input := fmt.Sprintf("worked on: %s\nstruggled with: %s\nintends to: %s", work, struggle, intention)

	text, err := c.respond(ctx, input)
	if err != nil {
		return domain.Analysis{}, err
	}

	var p analysisPayload
	if err := json.Unmarshal([]byte(extractJSON(text)), &p); err != nil {
		return domain.Analysis{}, perr.BadUpstreamf("undecodable analysis payload: %v", err)
	}
	return shape(p)
}

// respond posts one Responses API call and returns the assistant text
func (c *Client) respond(ctx context.Context, input string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model":        c.cfg.Model,
		"instructions": instructions,
		"input":        input,
	})
	if err != nil {
		return "", perr.Internalf("marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", perr.Internalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", perr.Unavailablef("openai request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", perr.Unavailablef("openai status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", perr.BadUpstreamf("undecodable response body: %v", err)
	}

	var sb strings.Builder
	for _, item := range parsed.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				sb.WriteString(part.Text)
			}
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", perr.BadUpstreamf("no output_text in response")
	}
	return text, nil
}

// shape validates the payload against the analysis contract
func shape(p analysisPayload) (domain.Analysis, error) {
	s := domain.Sentiment(strings.ToLower(strings.TrimSpace(p.Sentiment)))
	if !s.Valid() {
		return domain.Analysis{}, perr.BadUpstreamf("sentiment %q outside the closed set", p.Sentiment)
	}

	if strings.TrimSpace(p.Summary) == "" {
		return domain.Analysis{}, perr.BadUpstreamf("empty summary")
	}

	topics := make([]string, 0, len(p.Topics))
	for _, t := range p.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) < domain.MinTopics {
		return domain.Analysis{}, perr.BadUpstreamf("%d topics, need at least %d", len(topics), domain.MinTopics)
	}
	if len(topics) > domain.MaxTopics {
		topics = topics[:domain.MaxTopics]
	}

	return domain.Analysis{Sentiment: s, Summary: strings.TrimSpace(p.Summary), Topics: topics}, nil
}

// extractJSON tolerates models that wrap the object in a code fence
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			return text[i : j+1]
		}
	}
	return text
}
