package practice

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// FlashcardEngine drives self-assessed flashcards. The submitted value is
// whether the learner knew the word.
type FlashcardEngine = Engine[domain.WordItem, bool]

// FlashcardConfig selects the words of a flashcard session.
type FlashcardConfig struct {
	Filter domain.WordFilter
	Count  int
}

// flashcardPolicy takes the learner's self-assessment as the correctness.
type flashcardPolicy struct{}

func (flashcardPolicy) Validate(domain.WordItem, bool) error { return nil }

func (flashcardPolicy) Score(_ context.Context, _ domain.WordItem, knewIt bool) (Outcome, error) {
	return Outcome{
		SubmittedValue: strconv.FormatBool(knewIt),
		IsCorrect:      &knewIt,
	}, nil
}

// NewFlashcardEngine samples cfg.Count words and starts a flashcard session.
func NewFlashcardEngine(
	ctx context.Context,
	log *slog.Logger,
	source *ItemSource,
	store sessionStore,
	cfg FlashcardConfig,
	opts ...Option,
) (*FlashcardEngine, error) {
	return create[domain.WordItem, bool](ctx, log, store, flashcardPolicy{}, setup[domain.WordItem]{
		modality: domain.ModalityFlashcard,
		filter:   cfg.Filter,
		resolve: func(ctx context.Context) ([]domain.WordItem, error) {
			return source.Words(ctx, cfg.Filter, cfg.Count)
		},
	}, opts)
}
