package practice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// ShuffleFunc permutes n elements through swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// ItemSource resolves the items of a session from the catalog.
type ItemSource struct {
	catalog catalog
	shuffle ShuffleFunc
}

// NewItemSource creates an ItemSource. A nil shuffle uses math/rand/v2.
func NewItemSource(catalog catalog, shuffle ShuffleFunc) *ItemSource {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &ItemSource{catalog: catalog, shuffle: shuffle}
}

// ClampCount bounds a requested item count to [1, catalogSize].
// It returns 0 for an empty catalog.
func ClampCount(requested, catalogSize int) int {
	if catalogSize <= 0 {
		return 0
	}
	return max(1, min(requested, catalogSize))
}

// Words returns up to count flashcard items sampled uniformly from the
// words matching filter.
func (s *ItemSource) Words(ctx context.Context, filter domain.WordFilter, count int) ([]domain.WordItem, error) {
	words, err := s.catalog.ListWords(ctx, filter)
	if err != nil {
		return nil, catalogError("list words", err)
	}
	return sample(words, count, s.shuffle)
}

// Questions returns up to count questions sampled uniformly from every
// question the catalog can build for filter.
func (s *ItemSource) Questions(ctx context.Context, filter domain.WordFilter, count int) ([]domain.QuestionItem, error) {
	questions, err := s.catalog.ListQuestions(ctx, 0, filter)
	if err != nil {
		return nil, catalogError("list questions", err)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return sample(questions, count, s.shuffle)
}

// PromptItem wraps the prompt the learner picked into the single item of a
// writing session.
func PromptItem(text string, level domain.WritingLevel) (domain.WritingPromptItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.WritingPromptItem{}, domain.ErrEmptyCatalog
	}
	return domain.WritingPromptItem{ID: uuid.New(), PromptText: text, Level: level}, nil
}

// sample shuffles a copy of items and keeps the first ClampCount of them.
func sample[T any](items []T, count int, shuffle ShuffleFunc) ([]T, error) {
	n := ClampCount(count, len(items))
	if n == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	pool := slices.Clone(items)
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n], nil
}

func catalogError(op string, err error) error {
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrCatalogUnavailable, err)
}
