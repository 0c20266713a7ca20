// Package openai runs prompts through an OpenAI-compatible chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/config"
)

const systemPrompt = "You are an assistant that reads US health plan documents. " +
	"Return ONLY a single valid JSON object."

type Client struct {
	log        *slog.Logger
	cfg        config.OpenAI
	httpClient *http.Client
}

func New(log *slog.Logger, cfg config.OpenAI) *Client {
	return &Client{
		log: log,
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format"`
	Messages       []message      `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	body, err := json.Marshal(chatRequest{
		Model:          c.cfg.Model,
		Temperature:    0,
		ResponseFormat: map[string]any{"type": "json_object"},
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, raw)
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("failed to decode openai response: %w", err)
	}

	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}

	c.log.DebugContext(ctx, "openai completion",
		slog.String("model", c.cfg.Model),
		slog.Int("prompt_tokens", cc.Usage.PromptTokens),
		slog.Int("completion_tokens", cc.Usage.CompletionTokens),
		slog.Duration("elapsed", time.Since(start)),
	)

	return cc.Choices[0].Message.Content, nil
}
