package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// QuizEngine drives single-choice questions. The submitted value is the
// selected option.
type QuizEngine = Engine[domain.QuestionItem, string]

// QuizConfig selects the questions of a quiz session.
type QuizConfig struct {
	Filter domain.WordFilter
	Count  int
}

// quizPolicy grades locally by exact, case-sensitive comparison and asks
// the grader for an explanation. The explanation is best effort.
type quizPolicy struct {
	grader grader
	log    *slog.Logger
}

func (quizPolicy) Validate(_ domain.QuestionItem, selected string) error {
	if selected == "" {
		return domain.NewValidationError("selected_option", "required")
	}
	return nil
}

func (p quizPolicy) Score(ctx context.Context, q domain.QuestionItem, selected string) (Outcome, error) {
	correct := selected == q.CorrectOption
	out := Outcome{SubmittedValue: selected, IsCorrect: &correct}

	explanation, err := p.grader.Explain(ctx, q, selected)
	if err != nil {
		p.log.WarnContext(ctx, "explain answer failed",
			slog.String("question_id", q.ID.String()),
			slog.String("error", err.Error()))
		out.Warnings = append(out.Warnings, fmt.Errorf("explain answer: %w: %w", domain.ErrGradingUnavailable, err))
		return out, nil
	}
	out.Explanation = explanation
	return out, nil
}

// NewQuizEngine samples cfg.Count questions and starts a quiz session.
func NewQuizEngine(
	ctx context.Context,
	log *slog.Logger,
	source *ItemSource,
	store sessionStore,
	grader grader,
	cfg QuizConfig,
	opts ...Option,
) (*QuizEngine, error) {
	policy := quizPolicy{grader: grader, log: log}
	return create[domain.QuestionItem, string](ctx, log, store, policy, setup[domain.QuestionItem]{
		modality: domain.ModalityQuiz,
		filter:   cfg.Filter,
		resolve: func(ctx context.Context) ([]domain.QuestionItem, error) {
			return source.Questions(ctx, cfg.Filter, cfg.Count)
		},
	}, opts)
}

// ResumeQuizEngine rebuilds a quiz from its persisted record. resumeAt must
// equal the index of the first unanswered question; the session continues
// from there with the earlier answers kept. Answers stored past a gap are
// dropped and asked again.
func ResumeQuizEngine(
	log *slog.Logger,
	store sessionStore,
	grader grader,
	rec *domain.SessionRecord,
	resumeAt int,
	opts ...Option,
) (*QuizEngine, error) {
	if rec.Modality != domain.ModalityQuiz {
		return nil, domain.NewValidationError("session_id", "not a quiz session")
	}

	questions := make([]domain.QuestionItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		q, ok := it.(domain.QuestionItem)
		if !ok {
			return nil, fmt.Errorf("resume quiz %s: unexpected item type %T", rec.ID, it)
		}
		questions = append(questions, q)
	}

	state, err := domain.Restore(rec.ID, domain.ModalityQuiz, questions, rec.Responses, resumeAt)
	if err != nil {
		return nil, fmt.Errorf("resume quiz %s: %w", rec.ID, err)
	}

	synced := rec.Status == domain.SessionStatusComplete && rec.Summary != nil
	return restore[domain.QuestionItem, string](log, store, quizPolicy{grader: grader, log: log}, state, synced, opts), nil
}
