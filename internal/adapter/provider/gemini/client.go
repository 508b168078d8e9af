// Package gemini evaluates writing submissions and generates writing prompts
// with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// models is the subset of genai.Models used here.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds the Gemini client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client wraps a genai client for the writing features.
type Client struct {
	models  models
	model   string
	timeout time.Duration
	log     *slog.Logger
}

var (
	errEmptyResponse = errors.New("empty response")
	errBlocked       = errors.New("response blocked by safety filters")
)

// NewClient creates a Client for the Gemini API backend.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(client.Models, cfg, logger), nil
}

func newClient(m models, cfg Config, logger *slog.Logger) *Client {
	return &Client{
		models:  m,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "gemini"),
	}
}

// generateJSON sends prompt and returns the concatenated text of the first
// candidate. JSON output is requested but callers still extract it, since the
// model may wrap it.
func (c *Client) generateJSON(ctx context.Context, op, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.7),
	})
	if err != nil {
		c.log.ErrorContext(ctx, "gemini request failed",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: %s: %w", op, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", fmt.Errorf("gemini: %s: %w", op, err)
	}

	c.log.DebugContext(ctx, "gemini response",
		slog.String("op", op),
		slog.Int("chars", len(text)),
		slog.Duration("took", time.Since(start)))
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errEmptyResponse
	}
	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", errBlocked
	}
	if cand.Content == nil {
		return "", errEmptyResponse
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", errEmptyResponse
	}
	return b.String(), nil
}
