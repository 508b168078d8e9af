// Package ratelimited throttles calls to the model providers with a shared
// token bucket so bursts of sessions do not exhaust API quotas.
package ratelimited

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

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

// NewLimiter returns a limiter allowing rps calls per second with the given
// burst. rps <= 0 disables limiting.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), max(burst, 1))
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if err := l.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

// Explainer waits for the limiter before every Explain call.
type Explainer struct {
	next    explainer
	limiter *rate.Limiter
}

func NewExplainer(next explainer, limiter *rate.Limiter) *Explainer {
	return &Explainer{next: next, limiter: limiter}
}

func (e *Explainer) Explain(ctx context.Context, q domain.QuestionItem, selected string) (string, error) {
	if err := wait(ctx, e.limiter); err != nil {
		return "", err
	}
	return e.next.Explain(ctx, q, selected)
}

// Evaluator waits for the limiter before every Evaluate call.
type Evaluator struct {
	next    evaluator
	limiter *rate.Limiter
}

func NewEvaluator(next evaluator, limiter *rate.Limiter) *Evaluator {
	return &Evaluator{next: next, limiter: limiter}
}

func (e *Evaluator) Evaluate(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error) {
	if err := wait(ctx, e.limiter); err != nil {
		return domain.Evaluation{}, err
	}
	return e.next.Evaluate(ctx, prompt, text)
}

// PromptGenerator waits for the limiter before every GeneratePrompts call.
type PromptGenerator struct {
	next    promptGenerator
	limiter *rate.Limiter
}

func NewPromptGenerator(next promptGenerator, limiter *rate.Limiter) *PromptGenerator {
	return &PromptGenerator{next: next, limiter: limiter}
}

func (g *PromptGenerator) GeneratePrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error) {
	if err := wait(ctx, g.limiter); err != nil {
		return nil, err
	}
	return g.next.GeneratePrompts(ctx, count, level)
}
