package practice

import (
	"context"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// Policy is the modality-specific part of an engine: how a submission of
// type V for an item of type I is checked and graded.
type Policy[I domain.Item, V any] interface {
	// Validate rejects a submission before any remote call is made.
	Validate(item I, value V) error
	// Score grades a valid submission. A returned error aborts the advance
	// and leaves the session unchanged; Outcome.Warnings do not.
	Score(ctx context.Context, item I, value V) (Outcome, error)
}

// Outcome is the graded form of a submission.
type Outcome struct {
	SubmittedValue string
	IsCorrect      *bool
	Explanation    string
	Feedback       *domain.Evaluation
	Warnings       []error
}
