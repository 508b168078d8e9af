// Package word implements the vocabulary catalog repository using PostgreSQL.
// Queries are built with squirrel because the group filter is optional.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

const (
	tableWords   = "words"
	tableGroups  = "word_groups"
	tableMembers = "word_group_members"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListWords returns the words matching filter in insertion order.
// A group that does not exist yields an empty result.
func (r *Repo) ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	query := postgres.Builder().
		Select("w.id", "w.source_text", "w.target_text", "w.created_at").
		From(tableWords + " w").
		OrderBy("w.created_at", "w.id")

	if filter.GroupID != nil {
		query = query.
			Join(tableMembers + " m ON m.word_id = w.id").
			Where(sq.Eq{"m.group_id": *filter.GroupID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words (%s): %w", filter, err)
	}

	words, err := pgx.CollectRows(rows, scanWord)
	if err != nil {
		return nil, fmt.Errorf("list words (%s): %w", filter, err)
	}
	return words, nil
}

// ListGroups returns every group with its word count, ordered by name.
func (r *Repo) ListGroups(ctx context.Context) ([]domain.Group, error) {
	sql, args, err := postgres.Builder().
		Select("g.id", "g.name", "count(m.word_id)", "g.created_at").
		From(tableGroups + " g").
		LeftJoin(tableMembers + " m ON m.group_id = g.id").
		GroupBy("g.id").
		OrderBy("g.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Group, error) {
		var g domain.Group
		err := row.Scan(&g.ID, &g.Name, &g.WordCount, &g.CreatedAt)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertWord inserts a word, or returns the existing one with the same
// source and target text.
func (r *Repo) UpsertWord(ctx context.Context, sourceText, targetText string) (domain.Word, error) {
	id := uuid.New()
	sql, args, err := postgres.Builder().
		Insert(tableWords).
		Columns("id", "source_text", "target_text", "created_at").
		Values(id, sourceText, targetText, time.Now().UTC().Truncate(time.Microsecond)).
		Suffix("ON CONFLICT (source_text, target_text) DO UPDATE SET source_text = EXCLUDED.source_text").
		Suffix("RETURNING id, source_text, target_text, created_at").
		ToSql()
	if err != nil {
		return domain.Word{}, fmt.Errorf("build upsert word query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Word{}, postgres.MapError(err, "word", id)
	}
	w, err := pgx.CollectExactlyOneRow(rows, scanWord)
	if err != nil {
		return domain.Word{}, postgres.MapError(err, "word", id)
	}
	return w, nil
}

// UpsertGroup inserts a group by name, or returns the existing one.
func (r *Repo) UpsertGroup(ctx context.Context, name string) (domain.Group, error) {
	id := uuid.New()
	sql, args, err := postgres.Builder().
		Insert(tableGroups).
		Columns("id", "name", "created_at").
		Values(id, name, time.Now().UTC().Truncate(time.Microsecond)).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name").
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return domain.Group{}, fmt.Errorf("build upsert group query: %w", err)
	}

	var g domain.Group
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		return domain.Group{}, postgres.MapError(err, "group", id)
	}
	return g, nil
}

// AddToGroup links words to a group. Existing links are left untouched.
func (r *Repo) AddToGroup(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error {
	if len(wordIDs) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert(tableMembers).
		Columns("group_id", "word_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, id := range wordIDs {
		insert = insert.Values(groupID, id)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build add to group query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "group", groupID)
	}
	return nil
}

func scanWord(row pgx.CollectableRow) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.SourceText, &w.TargetText, &w.CreatedAt)
	return w, err
}
