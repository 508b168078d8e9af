// Package session implements the study session store using PostgreSQL.
// Items, summaries and feedback are JSONB columns encoded by this package,
// so queries use raw SQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, modality, group_id, status, items, summary, created_at, completed_at`

const createSQL = `
INSERT INTO study_sessions (id, modality, group_id, status, items, created_at)
VALUES ($1, $2, $3, 'ACTIVE', $4, $5)`

const recordResponseSQL = `
INSERT INTO study_responses (session_id, item_id, submitted_value, is_correct, explanation, feedback, answered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (session_id, item_id) DO UPDATE
SET submitted_value = EXCLUDED.submitted_value,
    is_correct      = EXCLUDED.is_correct,
    explanation     = EXCLUDED.explanation,
    feedback        = EXCLUDED.feedback,
    answered_at     = EXCLUDED.answered_at`

const completeSQL = `
UPDATE study_sessions
SET status = 'COMPLETE', summary = $2, completed_at = COALESCE(completed_at, $3)
WHERE id = $1`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1`

const responsesSQL = `
SELECT item_id, submitted_value, is_correct, explanation, feedback, answered_at
FROM study_responses
WHERE session_id = $1
ORDER BY seq`

const listRecentSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
ORDER BY created_at DESC
LIMIT $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateSession stores a new ACTIVE session with its items and returns its id.
func (r *Repo) CreateSession(ctx context.Context, in domain.NewSession) (uuid.UUID, error) {
	id := uuid.New()

	items, err := marshalItems(in.Items)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session %s: %w", id, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, createSQL,
		id,
		string(in.Modality),
		in.Filter.GroupID,
		items,
		r.now().UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "session", id)
	}
	return id, nil
}

// RecordResponse stores a response. Recording the same item again replaces
// the earlier row, so retries are safe.
func (r *Repo) RecordResponse(ctx context.Context, sessionID uuid.UUID, resp domain.Response) error {
	feedback, err := marshalEvaluation(resp.Feedback)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, recordResponseSQL,
		sessionID,
		resp.ItemID,
		resp.SubmittedValue,
		resp.IsCorrect,
		resp.Explanation,
		feedback,
		resp.Timestamp.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	return nil
}

// CompleteSession marks a session COMPLETE and stores its summary.
// Completing twice keeps the first completion time.
func (r *Repo) CompleteSession(ctx context.Context, sessionID uuid.UUID, summary domain.Summary) error {
	data, err := marshalSummary(summary)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, completeSQL,
		sessionID, data, r.now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session with its responses in answer order.
func (r *Repo) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SessionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanSession(q.QueryRow(ctx, getByIDSQL, sessionID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	rows, err := q.Query(ctx, responsesSQL, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	rec.Responses, err = pgx.CollectRows(rows, scanResponse)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	return rec, nil
}

// ListRecent returns the newest sessions without their responses.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]*domain.SessionRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	defer rows.Close()

	var out []*domain.SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list recent sessions: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.SessionRecord, error) {
	var (
		rec         domain.SessionRecord
		modality    string
		status      string
		itemsJSON   []byte
		summaryJSON []byte
	)

	err := row.Scan(&rec.ID, &modality, &rec.Filter.GroupID, &status,
		&itemsJSON, &summaryJSON, &rec.CreatedAt, &rec.CompletedAt)
	if err != nil {
		return nil, err
	}
	rec.Modality = domain.Modality(modality)
	rec.Status = domain.SessionStatus(status)

	if rec.Items, err = unmarshalItems(rec.Modality, itemsJSON); err != nil {
		return nil, fmt.Errorf("session %s: %w", rec.ID, err)
	}
	if rec.Summary, err = unmarshalSummary(summaryJSON); err != nil {
		return nil, fmt.Errorf("session %s: %w", rec.ID, err)
	}
	return &rec, nil
}

func scanResponse(row pgx.CollectableRow) (domain.Response, error) {
	var (
		resp         domain.Response
		feedbackJSON []byte
	)
	err := row.Scan(&resp.ItemID, &resp.SubmittedValue, &resp.IsCorrect,
		&resp.Explanation, &feedbackJSON, &resp.Timestamp)
	if err != nil {
		return domain.Response{}, err
	}
	if resp.Feedback, err = unmarshalEvaluation(feedbackJSON); err != nil {
		return domain.Response{}, err
	}
	return resp, nil
}
