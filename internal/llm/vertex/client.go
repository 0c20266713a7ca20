// Package vertex runs prompts on Gemini models hosted in Vertex AI.
package vertex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/kurochkinivan/doc_intelligence/internal/config"
)

const systemInstruction = "You are an assistant that reads US health plan documents. " +
	"You always answer with a single valid JSON document and nothing else."

type Client struct {
	model  *genai.GenerativeModel
	client *genai.Client
}

func New(ctx context.Context, cfg config.Vertex) (*Client, error) {
	if cfg.ProjectID == "" || cfg.Region == "" {
		return nil, errors.New("vertex project and region cannot be empty")
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	}

	return &Client{
		model:  model,
		client: client,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
