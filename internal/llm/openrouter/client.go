// Package openrouter implements llm.Completer against an OpenRouter-style
// chat-completions endpoint.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfortin/dv-analyzer/internal/common"
	"github.com/mfortin/dv-analyzer/internal/llm"
)

// Config for the OpenRouter client.
type Config struct {
	APIKey  string        // if empty, falls back to env OPENROUTER_API_KEY
	BaseURL string        // default https://openrouter.ai/api/v1
	Model   string        // e.g. "google/gemini-2.0-flash-001"
	Referer string        // sent as HTTP-Referer, OpenRouter attribution
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "google/gemini-2.0-flash-001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// WithAPIKey returns a client with the key overridden. The HTTP client and
// the rest of the configuration are shared.
func (c *Client) WithAPIKey(key string) llm.Completer {
	if key == "" {
		return c
	}
	derived := *c
	derived.cfg.APIKey = key
	return &derived
}

// Complete sends the prompt as a single user-role message and returns
// choices[0].message.content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.APIKey == "" {
		return "", common.NewAppError("MODEL_ERROR", "no API key provided for AI service", common.ErrModelCall)
	}

	c.log.Info("llm.chat.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"prompt_len", len(prompt),
	)

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.chat.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("MODEL_ERROR", fmt.Sprintf("API call failed: %v", err), common.ErrModelCall)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.chat.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("MODEL_ERROR", fmt.Sprintf("decode completion response: %v", err), common.ErrModelCall)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.chat.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("MODEL_ERROR", "no choices in completion response", common.ErrModelCall)
	}

	content := cc.Choices[0].Message.Content
	c.log.Info("llm.chat.ok",
		"req_id", rid,
		"completion_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openrouter http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openrouter response body close error", "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openrouter status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
