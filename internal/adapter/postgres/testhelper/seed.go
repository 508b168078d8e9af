package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts a word whose source text is made unique with a suffix.
func SeedWord(t *testing.T, pool *pgxpool.Pool, source, target string) domain.Word {
	t.Helper()

	w := domain.Word{
		ID:         uuid.New(),
		SourceText: source + "-" + uniqueSuffix(),
		TargetText: target,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, source_text, target_text, created_at) VALUES ($1, $2, $3, $4)`,
		w.ID, w.SourceText, w.TargetText, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}

// SeedGroup inserts a group containing the given words.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, words ...domain.Word) domain.Group {
	t.Helper()
	ctx := context.Background()

	g := domain.Group{
		ID:        uuid.New(),
		Name:      "group-" + uniqueSuffix(),
		WordCount: len(words),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO word_groups (id, name, created_at) VALUES ($1, $2, $3)`,
		g.ID, g.Name, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert group: %v", err)
	}

	for _, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_group_members (group_id, word_id) VALUES ($1, $2)`,
			g.ID, w.ID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedGroup insert member: %v", err)
		}
	}
	return g
}
