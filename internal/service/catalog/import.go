package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

type wordWriter interface {
	UpsertWord(ctx context.Context, sourceText, targetText string) (domain.Word, error)
	UpsertGroup(ctx context.Context, name string) (domain.Group, error)
	AddToGroup(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WordPair is one word to import.
type WordPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ImportGroup is a named group of words to import.
type ImportGroup struct {
	Name  string     `json:"name"`
	Words []WordPair `json:"words"`
}

// ImportInput is the seed document accepted by Importer.Import.
type ImportInput struct {
	Groups []ImportGroup `json:"groups"`
}

// Validate checks all fields and collects all errors.
func (in *ImportInput) Validate() error {
	var errs []domain.FieldError

	if len(in.Groups) == 0 {
		errs = append(errs, domain.FieldError{Field: "groups", Message: "at least one group required"})
	}
	for i, g := range in.Groups {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("groups[%d].name", i), Message: "required"})
		}
		for j, w := range g.Words {
			if strings.TrimSpace(w.Source) == "" || strings.TrimSpace(w.Target) == "" {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("groups[%d].words[%d]", i, j),
					Message: "source and target are required",
				})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportResult counts what an import touched.
type ImportResult struct {
	Groups int
	Words  int
}

// Importer loads seed documents into the catalog.
type Importer struct {
	log   *slog.Logger
	words wordWriter
	tx    txManager
}

// NewImporter creates a new catalog importer.
func NewImporter(log *slog.Logger, words wordWriter, tx txManager) *Importer {
	return &Importer{log: log.With("service", "catalog_import"), words: words, tx: tx}
}

// Import upserts every group and word of in within one transaction.
// Words repeated within a group, compared after normalization, are imported once.
func (im *Importer) Import(ctx context.Context, in ImportInput) (ImportResult, error) {
	if err := in.Validate(); err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	err := im.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, g := range in.Groups {
			group, err := im.words.UpsertGroup(ctx, strings.TrimSpace(g.Name))
			if err != nil {
				return fmt.Errorf("import group %q: %w", g.Name, err)
			}

			seen := make(map[string]struct{}, len(g.Words))
			ids := make([]uuid.UUID, 0, len(g.Words))
			for _, w := range g.Words {
				key := domain.WordKey(w.Source, w.Target)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				word, err := im.words.UpsertWord(ctx, strings.TrimSpace(w.Source), strings.TrimSpace(w.Target))
				if err != nil {
					return fmt.Errorf("import word %q: %w", w.Source, err)
				}
				ids = append(ids, word.ID)
			}

			if err := im.words.AddToGroup(ctx, group.ID, ids); err != nil {
				return fmt.Errorf("import group %q: %w", g.Name, err)
			}
			res.Groups++
			res.Words += len(ids)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	im.log.InfoContext(ctx, "catalog imported",
		slog.Int("groups", res.Groups),
		slog.Int("words", res.Words))
	return res, nil
}
