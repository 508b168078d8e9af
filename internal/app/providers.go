package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/ratelimited"
	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/template"
	"github.com/heartmarshall/langportal-backend/internal/config"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

type explainer interface {
	Explain(ctx context.Context, q domain.QuestionItem, selected string) (string, error)
}

type evaluator interface {
	Evaluate(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error)
}

type promptGenerator interface {
	GeneratePrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error)
}

// Providers holds the model-backed collaborators of the study services.
type Providers struct {
	Explainer explainer
	Evaluator evaluator
	// Generator is nil when no prompt model is configured.
	Generator promptGenerator
	// Fallback serves prompts when Generator is nil or fails.
	Fallback promptGenerator
}

// NewProviders builds the model clients for the configured API keys and falls
// back to the offline templates for the rest. Claude and Gemini calls share
// one rate limiter.
func NewProviders(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (Providers, error) {
	p := Providers{
		Explainer: template.Explainer{},
		Evaluator: template.Evaluator{},
		Fallback:  template.NewPrompts(nil),
	}
	limiter := ratelimited.NewLimiter(cfg.RequestsPerSecond, cfg.Burst)

	if cfg.HasAnthropic() {
		exp := claude.NewExplainer(claude.Config{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			Timeout: cfg.RequestTimeout,
		}, logger)
		p.Explainer = ratelimited.NewExplainer(exp, limiter)
		logger.Info("quiz explanations enabled", slog.String("model", cfg.AnthropicModel))
	} else {
		logger.Info("quiz explanations use templates: no Anthropic API key")
	}

	if cfg.HasGemini() {
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.RequestTimeout,
		}, logger)
		if err != nil {
			return Providers{}, fmt.Errorf("create gemini client: %w", err)
		}
		p.Evaluator = ratelimited.NewEvaluator(client, limiter)
		p.Generator = ratelimited.NewPromptGenerator(client, limiter)
		logger.Info("writing evaluation enabled", slog.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("writing evaluation uses a fixed development score: no Gemini API key")
	}

	return p, nil
}
