package domain

import (
	"github.com/google/uuid"
)

// Item is one unit of study content within a session.
type Item interface {
	ItemID() uuid.UUID
	// DisplayText is what the learner is shown for the item.
	DisplayText() string
	// ExpectedText is the reference answer, empty when the item has none.
	ExpectedText() string
}

// WordItem is a flashcard: a source-language word and its translation.
type WordItem struct {
	ID         uuid.UUID
	SourceText string
	TargetText string
}

func (w WordItem) ItemID() uuid.UUID { return w.ID }
func (w WordItem) DisplayText() string { return w.SourceText }
func (w WordItem) ExpectedText() string { return w.TargetText }

// QuestionItem is a single-choice question.
type QuestionItem struct {
	ID            uuid.UUID
	WordID        uuid.UUID
	Prompt        string
	Options       []string
	CorrectOption string
}

func (q QuestionItem) ItemID() uuid.UUID { return q.ID }
func (q QuestionItem) DisplayText() string { return q.Prompt }
func (q QuestionItem) ExpectedText() string { return q.CorrectOption }

// Validate checks that options are unique, contain the correct option and
// offer at least two choices.
func (q QuestionItem) Validate() error {
	var errs []FieldError

	if q.Prompt == "" {
		errs = append(errs, FieldError{Field: "prompt", Message: "required"})
	}
	if len(q.Options) < 2 {
		errs = append(errs, FieldError{Field: "options", Message: "at least 2 options required"})
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			errs = append(errs, FieldError{Field: "options", Message: "duplicate option " + opt})
			break
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[q.CorrectOption]; !ok {
		errs = append(errs, FieldError{Field: "correct_option", Message: "must be one of options"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WritingPromptItem is the single item of a writing session.
type WritingPromptItem struct {
	ID         uuid.UUID
	PromptText string
	Level      WritingLevel
}

func (p WritingPromptItem) ItemID() uuid.UUID { return p.ID }
func (p WritingPromptItem) DisplayText() string { return p.PromptText }
func (p WritingPromptItem) ExpectedText() string { return "" }
