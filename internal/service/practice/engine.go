package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// Engine drives one session through Initializing, Active and Complete.
// The modality-specific rules live in its Policy. An Engine is owned by a
// single caller; it is not safe for concurrent Advance calls.
type Engine[I domain.Item, V any] struct {
	state  domain.SessionState[I]
	policy Policy[I, V]
	store  sessionStore
	log    *slog.Logger
	now    func() time.Time

	// pending holds responses whose recording failed, oldest first.
	pending        []domain.Response
	completeSynced bool
	summary        *domain.Summary
}

// AdvanceResult is returned by a successful Advance. Warnings carry
// non-fatal collaborator failures (ErrPersistence, ErrGradingUnavailable).
type AdvanceResult struct {
	Response domain.Response
	Cursor   int
	Total    int
	Status   domain.SessionStatus
	Warnings []error
}

// Complete reports whether the advance finished the session.
func (r AdvanceResult) Complete() bool { return r.Status == domain.SessionStatusComplete }

// Option configures an Engine.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to timestamp responses.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// setup describes how a new engine obtains its items.
type setup[I domain.Item] struct {
	modality domain.Modality
	filter   domain.WordFilter
	resolve  func(ctx context.Context) ([]I, error)
}

// create resolves items, obtains a session handle and starts the session.
// Any failure is reported as a *domain.SetupError.
func create[I domain.Item, V any](
	ctx context.Context,
	log *slog.Logger,
	store sessionStore,
	policy Policy[I, V],
	su setup[I],
	opts []Option,
) (*Engine[I, V], error) {
	o := buildOptions(opts)
	state := domain.NewSessionState[I](su.modality)

	items, err := su.resolve(ctx)
	if err != nil {
		return nil, &domain.SetupError{Stage: "resolve items", Err: err}
	}
	if len(items) == 0 {
		return nil, &domain.SetupError{Stage: "resolve items", Err: domain.ErrEmptyCatalog}
	}

	sessionID, err := store.CreateSession(ctx, domain.NewSession{
		Modality: su.modality,
		Filter:   su.filter,
		Items:    domain.ItemsOf(items),
	})
	if err != nil {
		return nil, &domain.SetupError{Stage: "create session", Err: err}
	}

	state, err = domain.Start(state, sessionID, items)
	if err != nil {
		return nil, &domain.SetupError{Stage: "start session", Err: err}
	}

	e := &Engine[I, V]{
		state:  state,
		policy: policy,
		store:  store,
		log:    log.With(slog.String("session_id", sessionID.String()), slog.String("modality", su.modality.String())),
		now:    o.now,
	}
	e.log.InfoContext(ctx, "session started", slog.Int("items", len(items)), slog.String("filter", su.filter.String()))
	return e, nil
}

// restore wraps an already rebuilt state, for example a resumed session.
// completeSynced reports whether the store already holds the completion
// record; when it does not, Flush writes it.
func restore[I domain.Item, V any](
	log *slog.Logger,
	store sessionStore,
	policy Policy[I, V],
	state domain.SessionState[I],
	completeSynced bool,
	opts []Option,
) *Engine[I, V] {
	o := buildOptions(opts)
	e := &Engine[I, V]{
		state:  state,
		policy: policy,
		store:  store,
		log:    log.With(slog.String("session_id", state.SessionID.String()), slog.String("modality", state.Modality.String())),
		now:    o.now,
	}
	e.completeSynced = completeSynced
	return e
}

// Advance submits value for itemID, which must be the current item.
//
// Sequencing and validation errors leave the session untouched. Once the
// response is recorded locally, persistence failures are returned as
// warnings and never undo the advance.
func (e *Engine[I, V]) Advance(ctx context.Context, itemID uuid.UUID, value V) (AdvanceResult, error) {
	if err := domain.ExpectCurrent(e.state, itemID); err != nil {
		return AdvanceResult{}, err
	}
	item, _ := e.state.Current()

	if err := e.policy.Validate(item, value); err != nil {
		return AdvanceResult{}, err
	}

	outcome, err := e.policy.Score(ctx, item, value)
	if err != nil {
		return AdvanceResult{}, err
	}

	resp := domain.Response{
		ItemID:         itemID,
		SubmittedValue: outcome.SubmittedValue,
		IsCorrect:      outcome.IsCorrect,
		Explanation:    outcome.Explanation,
		Feedback:       outcome.Feedback,
		Timestamp:      e.now(),
	}

	next, err := domain.Advance(e.state, resp)
	if err != nil {
		return AdvanceResult{}, err
	}
	e.state = next

	warnings := slices.Clone(outcome.Warnings)
	if err := e.store.RecordResponse(ctx, e.state.SessionID, resp); err != nil {
		e.pending = append(e.pending, resp)
		e.log.WarnContext(ctx, "record response failed",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()))
		warnings = append(warnings, fmt.Errorf("record response: %w: %w", domain.ErrPersistence, err))
	}

	if e.state.Status == domain.SessionStatusComplete {
		if err := e.finish(ctx); err != nil {
			warnings = append(warnings, err)
		}
	}

	return AdvanceResult{
		Response: resp,
		Cursor:   e.state.Cursor,
		Total:    len(e.state.Items),
		Status:   e.state.Status,
		Warnings: warnings,
	}, nil
}

// finish caches the summary and hands it to persistence.
func (e *Engine[I, V]) finish(ctx context.Context) error {
	sum, err := e.Summarize()
	if err != nil {
		return err
	}

	e.log.InfoContext(ctx, "session complete",
		slog.Int("total", sum.TotalItems),
		slog.Int("correct", sum.CorrectCount),
		slog.Int("accuracy", sum.AccuracyPercent))

	if err := e.store.CompleteSession(ctx, e.state.SessionID, sum); err != nil {
		e.log.WarnContext(ctx, "complete session failed", slog.String("error", err.Error()))
		return fmt.Errorf("complete session: %w: %w", domain.ErrPersistence, err)
	}
	e.completeSynced = true
	return nil
}

// Flush resends responses whose recording failed earlier, then the
// completion record if it is still missing. It returns the number of
// responses still pending.
func (e *Engine[I, V]) Flush(ctx context.Context) (int, error) {
	var (
		remaining []domain.Response
		errs      []error
	)
	for _, r := range e.pending {
		if err := e.store.RecordResponse(ctx, e.state.SessionID, r); err != nil {
			remaining = append(remaining, r)
			errs = append(errs, err)
		}
	}
	e.pending = remaining

	if len(remaining) == 0 && e.state.Status == domain.SessionStatusComplete && !e.completeSynced {
		if err := e.finish(ctx); err != nil {
			return 0, err
		}
	}

	if len(errs) > 0 {
		return len(remaining), fmt.Errorf("flush responses: %w: %w", domain.ErrPersistence, errors.Join(errs...))
	}
	return 0, nil
}

// Summarize returns the session summary. It fails with ErrSessionNotComplete
// until the last item is answered; afterwards every call returns the same
// cached result.
func (e *Engine[I, V]) Summarize() (domain.Summary, error) {
	if e.summary == nil {
		sum, err := domain.Summarize(e.state)
		if err != nil {
			return domain.Summary{}, err
		}
		e.summary = &sum
	}
	out := *e.summary
	out.PerItem = slices.Clone(e.summary.PerItem)
	return out, nil
}

// CurrentItem returns items[cursor], or false once the session is complete.
func (e *Engine[I, V]) CurrentItem() (I, bool) { return e.state.Current() }

// Current is CurrentItem through the Item interface.
func (e *Engine[I, V]) Current() (domain.Item, bool) {
	item, ok := e.state.Current()
	if !ok {
		return nil, false
	}
	return item, true
}

func (e *Engine[I, V]) SessionID() uuid.UUID { return e.state.SessionID }
func (e *Engine[I, V]) Modality() domain.Modality { return e.state.Modality }
func (e *Engine[I, V]) Status() domain.SessionStatus { return e.state.Status }
func (e *Engine[I, V]) Cursor() int { return e.state.Cursor }
func (e *Engine[I, V]) Total() int { return len(e.state.Items) }
func (e *Engine[I, V]) Pending() int { return len(e.pending) }
func (e *Engine[I, V]) State() domain.SessionState[I] { return e.state }
