package practice

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// ListPromptsInput holds the parameters for fetching writing prompts.
type ListPromptsInput struct {
	Count int
	Level domain.WritingLevel
}

// Validate checks all fields and collects all errors.
func (i *ListPromptsInput) Validate() error {
	var errs []domain.FieldError

	if i.Count < 0 || i.Count > 20 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 0 and 20"})
	}
	if i.Level != "" && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be beginner, intermediate, or advanced"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartInput holds the parameters for starting a flashcard or quiz session.
// Count is clamped to the catalog size rather than rejected.
type StartInput struct {
	GroupID *uuid.UUID
	Count   int
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID != nil && *i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "must not be empty when set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *StartInput) filter() domain.WordFilter {
	return domain.WordFilter{GroupID: i.GroupID}
}

// StartWritingInput holds the prompt picked for a writing session.
type StartWritingInput struct {
	Prompt string
	Level  domain.WritingLevel
}

// Validate checks all fields and collects all errors.
func (i *StartWritingInput) Validate() error {
	var errs []domain.FieldError

	if i.Prompt == "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	}
	if len(i.Prompt) > 1000 {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "max 1000 characters"})
	}
	if i.Level != "" && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be beginner, intermediate, or advanced"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerFlashcardInput holds a flashcard self-assessment.
type AnswerFlashcardInput struct {
	SessionID uuid.UUID
	ItemID    uuid.UUID
	KnewIt    bool
}

// Validate checks all fields and collects all errors.
func (i *AnswerFlashcardInput) Validate() error {
	return validateIDs(i.SessionID, i.ItemID)
}

// AnswerQuizInput holds the option selected for a question.
type AnswerQuizInput struct {
	SessionID      uuid.UUID
	ItemID         uuid.UUID
	SelectedOption string
}

// Validate checks all fields and collects all errors.
func (i *AnswerQuizInput) Validate() error {
	return validateIDs(i.SessionID, i.ItemID)
}

// SubmitWritingInput holds a writing submission.
type SubmitWritingInput struct {
	SessionID uuid.UUID
	ItemID    uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
// The word count is checked by the engine.
func (i *SubmitWritingInput) Validate() error {
	return validateIDs(i.SessionID, i.ItemID)
}

// ResumeQuizInput holds the parameters for resuming a quiz.
type ResumeQuizInput struct {
	SessionID            uuid.UUID
	CurrentQuestionIndex int
}

// Validate checks all fields and collects all errors.
func (i *ResumeQuizInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.CurrentQuestionIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "current_question_index", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateIDs(sessionID, itemID uuid.UUID) error {
	var errs []domain.FieldError

	if sessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if itemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
