package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// WritingEngine drives a single free-text submission.
type WritingEngine = Engine[domain.WritingPromptItem, string]

// WritingConfig holds the prompt picked by the learner.
type WritingConfig struct {
	Prompt string
	Level  domain.WritingLevel
	Bounds domain.WordBounds
}

// writingPolicy checks the word count locally and then asks the evaluator
// for a qualitative report. Evaluation failures abort the submission.
type writingPolicy struct {
	evaluator evaluator
	bounds    domain.WordBounds
}

func (p writingPolicy) Validate(_ domain.WritingPromptItem, text string) error {
	return p.bounds.Check(text)
}

func (p writingPolicy) Score(ctx context.Context, prompt domain.WritingPromptItem, text string) (Outcome, error) {
	eval, err := p.evaluator.Evaluate(ctx, prompt, text)
	if err != nil {
		return Outcome{}, fmt.Errorf("evaluate writing: %w: %w", domain.ErrEvaluationFailed, err)
	}
	if err := eval.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("evaluate writing: %w: %w", domain.ErrEvaluationFailed, err)
	}
	return Outcome{SubmittedValue: text, Feedback: &eval}, nil
}

// NewWritingEngine starts a writing session on cfg.Prompt. A zero
// cfg.Bounds means domain.DefaultWordBounds.
func NewWritingEngine(
	ctx context.Context,
	log *slog.Logger,
	store sessionStore,
	evaluator evaluator,
	cfg WritingConfig,
	opts ...Option,
) (*WritingEngine, error) {
	bounds := cfg.Bounds
	if bounds == (domain.WordBounds{}) {
		bounds = domain.DefaultWordBounds
	}
	level := cfg.Level
	if level == "" {
		level = domain.WritingLevelIntermediate
	}

	policy := writingPolicy{evaluator: evaluator, bounds: bounds}
	return create[domain.WritingPromptItem, string](ctx, log, store, policy, setup[domain.WritingPromptItem]{
		modality: domain.ModalityWriting,
		resolve: func(context.Context) ([]domain.WritingPromptItem, error) {
			item, err := PromptItem(cfg.Prompt, level)
			if err != nil {
				return nil, err
			}
			return []domain.WritingPromptItem{item}, nil
		},
	}, opts)
}

// Prompt returns the prompt of a writing session.
func Prompt(e *WritingEngine) domain.WritingPromptItem {
	return e.State().Items[0]
}
