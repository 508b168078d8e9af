// Package template provides the offline collaborators used when no model API
// key is configured: a fixed explanation, a static prompt list and a
// development evaluation.
package template

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// Explainer states the correct translation of a question.
type Explainer struct{}

// Explain implements the quiz grader contract.
func (Explainer) Explain(_ context.Context, q domain.QuestionItem, _ string) (string, error) {
	return fmt.Sprintf("The correct translation of '%s' is '%s'.", q.Prompt, q.CorrectOption), nil
}

// DefaultPrompts is the fallback writing prompt list.
var DefaultPrompts = []string{
	"Write a short letter to a friend about your vacation",
	"Describe your favorite restaurant and why you like it",
	"Write about your daily routine",
	"Describe your hometown to someone who has never been there",
	"Write about your favorite hobby",
	"Describe your family members",
	"Write about a memorable trip you took",
	"Describe your ideal job",
	"Write about your favorite season and why you like it",
	"Describe a person who has influenced you",
}

// Prompts serves a static prompt list in random order.
type Prompts struct {
	prompts []string
	shuffle func(n int, swap func(i, j int))
}

// NewPrompts returns a Prompts over list, or DefaultPrompts when list is empty.
func NewPrompts(list []string) *Prompts {
	if len(list) == 0 {
		list = DefaultPrompts
	}
	return &Prompts{prompts: slices.Clone(list), shuffle: rand.Shuffle}
}

// GeneratePrompts returns up to count prompts. The level is ignored.
func (p *Prompts) GeneratePrompts(_ context.Context, count int, _ domain.WritingLevel) ([]string, error) {
	out := slices.Clone(p.prompts)
	p.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count > 0 && count < len(out) {
		out = out[:count]
	}
	return out, nil
}

// Evaluator returns a fixed development evaluation.
type Evaluator struct{}

// Evaluate implements the writing evaluator contract.
func (Evaluator) Evaluate(_ context.Context, _ domain.WritingPromptItem, _ string) (domain.Evaluation, error) {
	return domain.Evaluation{
		Score:               85,
		Strengths:           []string{"Good vocabulary usage", "Clear structure"},
		AreasForImprovement: []string{"Some grammar errors", "Could use more complex sentence structures"},
		DetailedAnalysis: "The writing addresses the prompt and is easy to follow. " +
			"Vocabulary is appropriate for the level, with a few grammar slips. " +
			"Try combining sentences with linking words to vary the structure.",
	}, nil
}
