package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

type promptGenerator interface {
	GeneratePrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// maxDistractors is the number of wrong options offered per question.
const maxDistractors = 3

// Service serves study content: words, generated quiz questions and
// writing prompts.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	generator promptGenerator
	fallback  promptGenerator
	shuffle   func(n int, swap func(i, j int))
}

// NewService creates a catalog service. generator may be nil, in which case
// prompts always come from fallback.
func NewService(log *slog.Logger, words wordRepo, generator, fallback promptGenerator) *Service {
	return &Service{
		log:       log.With("service", "catalog"),
		words:     words,
		generator: generator,
		fallback:  fallback,
		shuffle:   rand.Shuffle,
	}
}

// ListWords returns the flashcard items matching filter.
func (s *Service) ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.WordItem, error) {
	words, err := s.words.ListWords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return lo.Map(words, func(w domain.Word, _ int) domain.WordItem { return w.Item() }), nil
}

// ListGroups returns the word groups of the catalog.
func (s *Service) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.words.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ListQuestions builds one question per word of the filtered catalog. The
// prompt is the source text; the options are the translation plus up to three
// translations of other words, shuffled. Words with no possible distractor
// are skipped. count <= 0 returns every question.
func (s *Service) ListQuestions(ctx context.Context, count int, filter domain.WordFilter) ([]domain.QuestionItem, error) {
	words, err := s.words.ListWords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	targets := lo.Uniq(lo.Map(words, func(w domain.Word, _ int) string { return w.TargetText }))

	questions := make([]domain.QuestionItem, 0, len(words))
	for _, w := range words {
		q, ok := s.question(w, targets)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}

	if count > 0 && count < len(questions) {
		s.shuffle(len(questions), func(i, j int) { questions[i], questions[j] = questions[j], questions[i] })
		questions = questions[:count]
	}
	return questions, nil
}

func (s *Service) question(w domain.Word, targets []string) (domain.QuestionItem, bool) {
	candidates := lo.Without(targets, w.TargetText)
	if len(candidates) == 0 {
		return domain.QuestionItem{}, false
	}
	s.shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	options := append([]string{w.TargetText}, candidates[:min(maxDistractors, len(candidates))]...)
	s.shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return domain.QuestionItem{
		ID:            uuid.New(),
		WordID:        w.ID,
		Prompt:        w.SourceText,
		Options:       options,
		CorrectOption: w.TargetText,
	}, true
}

// ListWritingPrompts asks the generator for prompts and falls back to the
// static list when it fails or returns nothing usable.
func (s *Service) ListWritingPrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error) {
	if s.generator != nil {
		prompts, err := s.generator.GeneratePrompts(ctx, count, level)
		prompts = cleanPrompts(prompts, count)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "prompt generator error, using fallback prompts",
				slog.String("level", level.String()),
				slog.String("error", err.Error()))
		case len(prompts) == 0:
			s.log.WarnContext(ctx, "prompt generator returned no prompts, using fallback prompts",
				slog.String("level", level.String()))
		default:
			return prompts, nil
		}
	}

	prompts, err := s.fallback.GeneratePrompts(ctx, count, level)
	if err != nil {
		return nil, fmt.Errorf("fallback prompts: %w", err)
	}
	return cleanPrompts(prompts, count), nil
}

// cleanPrompts drops blank and repeated prompts and keeps at most count.
func cleanPrompts(prompts []string, count int) []string {
	out := lo.Uniq(lo.Compact(lo.Map(prompts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})))

	if count > 0 && len(out) > count {
		out = out[:count]
	}
	return slices.Clip(out)
}
