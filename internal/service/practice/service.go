package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalog interface {
	ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.WordItem, error)
	ListQuestions(ctx context.Context, count int, filter domain.WordFilter) ([]domain.QuestionItem, error)
}

type promptCatalog interface {
	ListWritingPrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error)
}

type sessionStore interface {
	CreateSession(ctx context.Context, in domain.NewSession) (uuid.UUID, error)
	RecordResponse(ctx context.Context, sessionID uuid.UUID, r domain.Response) error
	CompleteSession(ctx context.Context, sessionID uuid.UUID, summary domain.Summary) error
}

type sessionRepo interface {
	sessionStore
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SessionRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SessionRecord, error)
}

type grader interface {
	Explain(ctx context.Context, q domain.QuestionItem, selected string) (string, error)
}

type evaluator interface {
	Evaluate(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the practice session limits.
type Config struct {
	MaxQuizQuestions int
	WritingBounds    domain.WordBounds
	PromptCount      int
	DefaultLevel     domain.WritingLevel
	IdleTTL          time.Duration
	JanitorInterval  time.Duration
}

// liveSession is implemented by every Engine instantiation.
type liveSession interface {
	SessionID() uuid.UUID
	Modality() domain.Modality
	Status() domain.SessionStatus
	Cursor() int
	Total() int
	Pending() int
	Current() (domain.Item, bool)
	Summarize() (domain.Summary, error)
	Flush(ctx context.Context) (int, error)
}

type liveEntry struct {
	mu       sync.Mutex
	session  liveSession
	lastUsed time.Time
	// closed is set under mu once the entry leaves the registry.
	closed bool
}

// Service keeps the live engines of in-progress sessions and exposes the
// session operations to transports.
type Service struct {
	log       *slog.Logger
	source    *ItemSource
	sessions  sessionRepo
	prompts   promptCatalog
	grader    grader
	evaluator evaluator
	cfg       Config
	now       func() time.Time

	mu   sync.Mutex
	live map[uuid.UUID]*liveEntry
}

// NewService creates a new practice service.
func NewService(
	log *slog.Logger,
	source *ItemSource,
	sessions sessionRepo,
	prompts promptCatalog,
	grader grader,
	evaluator evaluator,
	cfg Config,
) *Service {
	if cfg.WritingBounds == (domain.WordBounds{}) {
		cfg.WritingBounds = domain.DefaultWordBounds
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = domain.WritingLevelIntermediate
	}
	if cfg.PromptCount <= 0 {
		cfg.PromptCount = 10
	}
	return &Service{
		log:       log.With("service", "practice"),
		source:    source,
		sessions:  sessions,
		prompts:   prompts,
		grader:    grader,
		evaluator: evaluator,
		cfg:       cfg,
		now:       time.Now,
		live:      make(map[uuid.UUID]*liveEntry),
	}
}

// SessionView is a read-only snapshot of a live session.
type SessionView struct {
	ID       uuid.UUID
	Modality domain.Modality
	Status   domain.SessionStatus
	Cursor   int
	Total    int
	// Current is nil once the session is complete.
	Current domain.Item
	// Pending counts responses not yet stored durably.
	Pending int
}

// AdvanceOutput is the result of an answer or submission.
type AdvanceOutput struct {
	Session  SessionView
	Response domain.Response
	Warnings []error
}

func viewOf(ls liveSession) SessionView {
	v := SessionView{
		ID:       ls.SessionID(),
		Modality: ls.Modality(),
		Status:   ls.Status(),
		Cursor:   ls.Cursor(),
		Total:    ls.Total(),
		Pending:  ls.Pending(),
	}
	if item, ok := ls.Current(); ok {
		v.Current = item
	}
	return v
}

// ---------------------------------------------------------------------------
// Session lifecycle
// ---------------------------------------------------------------------------

// ListWritingPrompts returns candidate prompts for a writing session.
func (s *Service) ListWritingPrompts(ctx context.Context, in ListPromptsInput) ([]string, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	count := in.Count
	if count == 0 {
		count = s.cfg.PromptCount
	}
	level := in.Level
	if level == "" {
		level = s.cfg.DefaultLevel
	}

	prompts, err := s.prompts.ListWritingPrompts(ctx, count, level)
	if err != nil {
		return nil, fmt.Errorf("list writing prompts: %w", err)
	}
	return prompts, nil
}

// StartFlashcards creates a flashcard session over in.Count sampled words.
func (s *Service) StartFlashcards(ctx context.Context, in StartInput) (SessionView, error) {
	if err := in.Validate(); err != nil {
		return SessionView{}, err
	}

	eng, err := NewFlashcardEngine(ctx, s.log, s.source, s.sessions, FlashcardConfig{
		Filter: in.filter(),
		Count:  in.Count,
	}, WithClock(s.now))
	if err != nil {
		return SessionView{}, fmt.Errorf("start flashcards: %w", err)
	}
	return s.register(eng), nil
}

// StartQuiz creates a quiz session. The question count is capped at
// Config.MaxQuizQuestions.
func (s *Service) StartQuiz(ctx context.Context, in StartInput) (SessionView, error) {
	if err := in.Validate(); err != nil {
		return SessionView{}, err
	}

	count := in.Count
	if s.cfg.MaxQuizQuestions > 0 {
		count = min(count, s.cfg.MaxQuizQuestions)
	}

	eng, err := NewQuizEngine(ctx, s.log, s.source, s.sessions, s.grader, QuizConfig{
		Filter: in.filter(),
		Count:  count,
	}, WithClock(s.now))
	if err != nil {
		return SessionView{}, fmt.Errorf("start quiz: %w", err)
	}
	return s.register(eng), nil
}

// StartWriting creates a writing session on the prompt the learner picked.
func (s *Service) StartWriting(ctx context.Context, in StartWritingInput) (SessionView, error) {
	if err := in.Validate(); err != nil {
		return SessionView{}, err
	}
	level := in.Level
	if level == "" {
		level = s.cfg.DefaultLevel
	}

	eng, err := NewWritingEngine(ctx, s.log, s.sessions, s.evaluator, WritingConfig{
		Prompt: in.Prompt,
		Level:  level,
		Bounds: s.cfg.WritingBounds,
	}, WithClock(s.now))
	if err != nil {
		return SessionView{}, fmt.Errorf("start writing: %w", err)
	}
	return s.register(eng), nil
}

// RetryWriting discards a writing attempt and starts a fresh session on the
// same prompt. The discarded attempt is not linked to the new session.
func (s *Service) RetryWriting(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	entry, release, err := s.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	prev, ok := entry.session.(*WritingEngine)
	if !ok {
		release()
		return SessionView{}, notModality(domain.ModalityWriting)
	}
	defer release()
	prompt := Prompt(prev)

	eng, err := NewWritingEngine(ctx, s.log, s.sessions, s.evaluator, WritingConfig{
		Prompt: prompt.PromptText,
		Level:  prompt.Level,
		Bounds: s.cfg.WritingBounds,
	}, WithClock(s.now))
	if err != nil {
		return SessionView{}, fmt.Errorf("retry writing: %w", err)
	}

	s.drop(sessionID, entry)
	view := s.register(eng)
	s.log.InfoContext(ctx, "writing attempt discarded",
		slog.String("previous_session_id", sessionID.String()),
		slog.String("session_id", view.ID.String()))
	return view, nil
}

// ResumeQuiz reattaches to a quiz session after a reconnect. The caller's
// currentQuestionIndex must equal the index of the first unanswered question.
func (s *Service) ResumeQuiz(ctx context.Context, in ResumeQuizInput) (SessionView, error) {
	if err := in.Validate(); err != nil {
		return SessionView{}, err
	}

	entry, release, err := s.acquire(in.SessionID)
	switch {
	case err == nil:
		defer release()
		eng, ok := entry.session.(*QuizEngine)
		if !ok {
			return SessionView{}, notModality(domain.ModalityQuiz)
		}
		if eng.Cursor() != in.CurrentQuestionIndex {
			return SessionView{}, domain.NewValidationError("current_question_index",
				fmt.Sprintf("must equal the index of the first unanswered item (%d), got %d", eng.Cursor(), in.CurrentQuestionIndex))
		}
		return viewOf(eng), nil
	case !errors.Is(err, domain.ErrNotFound):
		return SessionView{}, err
	}

	rec, err := s.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return SessionView{}, fmt.Errorf("resume quiz: %w", err)
	}

	eng, err := ResumeQuizEngine(s.log, s.sessions, s.grader, rec, in.CurrentQuestionIndex, WithClock(s.now))
	if err != nil {
		return SessionView{}, err
	}

	s.log.InfoContext(ctx, "quiz resumed",
		slog.String("session_id", rec.ID.String()),
		slog.Int("cursor", eng.Cursor()))
	return s.register(eng), nil
}

// Abandon drops a live session. Nothing is written; the stored record keeps
// whatever was recorded so far.
func (s *Service) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	entry, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	s.drop(sessionID, entry)
	release()
	s.log.InfoContext(ctx, "session abandoned", slog.String("session_id", sessionID.String()))
	return nil
}

// ---------------------------------------------------------------------------
// Progression
// ---------------------------------------------------------------------------

// AnswerFlashcard records whether the learner knew the current word.
func (s *Service) AnswerFlashcard(ctx context.Context, in AnswerFlashcardInput) (AdvanceOutput, error) {
	if err := in.Validate(); err != nil {
		return AdvanceOutput{}, err
	}
	return advance[domain.WordItem, bool](ctx, s, in.SessionID, in.ItemID, domain.ModalityFlashcard, in.KnewIt)
}

// AnswerQuiz records the option selected for the current question.
func (s *Service) AnswerQuiz(ctx context.Context, in AnswerQuizInput) (AdvanceOutput, error) {
	if err := in.Validate(); err != nil {
		return AdvanceOutput{}, err
	}
	return advance[domain.QuestionItem, string](ctx, s, in.SessionID, in.ItemID, domain.ModalityQuiz, in.SelectedOption)
}

// SubmitWriting submits the text of a writing session for evaluation.
func (s *Service) SubmitWriting(ctx context.Context, in SubmitWritingInput) (AdvanceOutput, error) {
	if err := in.Validate(); err != nil {
		return AdvanceOutput{}, err
	}
	return advance[domain.WritingPromptItem, string](ctx, s, in.SessionID, in.ItemID, domain.ModalityWriting, in.Text)
}

func advance[I domain.Item, V any](
	ctx context.Context,
	s *Service,
	sessionID, itemID uuid.UUID,
	modality domain.Modality,
	value V,
) (AdvanceOutput, error) {
	entry, release, err := s.acquire(sessionID)
	if err != nil {
		return AdvanceOutput{}, err
	}
	defer release()

	eng, ok := entry.session.(*Engine[I, V])
	if !ok {
		return AdvanceOutput{}, notModality(modality)
	}

	res, err := eng.Advance(ctx, itemID, value)
	if err != nil {
		return AdvanceOutput{}, fmt.Errorf("advance session %s: %w", sessionID, err)
	}
	return AdvanceOutput{Session: viewOf(eng), Response: res.Response, Warnings: res.Warnings}, nil
}

// Current returns a snapshot of a live session.
func (s *Service) Current(_ context.Context, sessionID uuid.UUID) (SessionView, error) {
	entry, release, err := s.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer release()
	return viewOf(entry.session), nil
}

// Sync retries recording responses that failed to persist earlier.
func (s *Service) Sync(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	entry, release, err := s.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer release()

	if _, err := entry.session.Flush(ctx); err != nil {
		return viewOf(entry.session), fmt.Errorf("sync session %s: %w", sessionID, err)
	}
	return viewOf(entry.session), nil
}

// Summary returns the summary of a completed session, from the live engine
// when it is still cached, otherwise from the stored record.
func (s *Service) Summary(ctx context.Context, sessionID uuid.UUID) (domain.Summary, error) {
	entry, release, err := s.acquire(sessionID)
	switch {
	case err == nil:
		defer release()
		sum, err := entry.session.Summarize()
		if err != nil {
			return domain.Summary{}, fmt.Errorf("summarize session %s: %w", sessionID, err)
		}
		return sum, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Summary{}, err
	}

	rec, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarize session %s: %w", sessionID, err)
	}
	if rec.Status != domain.SessionStatusComplete || rec.Summary == nil {
		return domain.Summary{}, fmt.Errorf("summarize session %s: %w", sessionID, domain.ErrSessionNotComplete)
	}
	return *rec.Summary, nil
}

// History returns the most recently created stored sessions, newest first,
// without their responses. A zero limit means 20.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.SessionRecord, error) {
	switch {
	case limit == 0:
		limit = 20
	case limit < 0 || limit > 100:
		return nil, domain.NewValidationError("limit", "must be between 1 and 100")
	}

	recs, err := s.sessions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list session history: %w", err)
	}
	return recs, nil
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func (s *Service) register(ls liveSession) SessionView {
	s.mu.Lock()
	s.live[ls.SessionID()] = &liveEntry{session: ls, lastUsed: s.now()}
	s.mu.Unlock()
	return viewOf(ls)
}

// drop removes an entry from the registry. The caller holds entry.mu, so
// calls already waiting on the entry see it closed.
func (s *Service) drop(sessionID uuid.UUID, entry *liveEntry) {
	entry.closed = true
	s.mu.Lock()
	if s.live[sessionID] == entry {
		delete(s.live, sessionID)
	}
	s.mu.Unlock()
}

// acquire locks a live session for one call. A call that overlaps another
// one on the same session fails with ErrConflict.
func (s *Service) acquire(sessionID uuid.UUID) (*liveEntry, func(), error) {
	s.mu.Lock()
	entry, ok := s.live[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	if !entry.mu.TryLock() {
		return nil, nil, fmt.Errorf("session %s: %w: another request is in progress", sessionID, domain.ErrConflict)
	}
	if entry.closed {
		entry.mu.Unlock()
		return nil, nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return entry, func() {
		entry.lastUsed = s.now()
		entry.mu.Unlock()
	}, nil
}

// LiveCount returns the number of sessions held in memory.
func (s *Service) LiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// EvictIdle drops sessions unused for longer than Config.IdleTTL and returns
// how many were dropped. Sessions busy with a call are skipped. Writes still
// pending on an idle session are flushed first; a session whose flush fails
// stays in memory so a later Sync or eviction can retry.
func (s *Service) EvictIdle(ctx context.Context) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.IdleTTL)

	type idle struct {
		id    uuid.UUID
		entry *liveEntry
	}
	var candidates []idle

	s.mu.Lock()
	for id, entry := range s.live {
		if !entry.mu.TryLock() {
			continue
		}
		if entry.closed || !entry.lastUsed.Before(cutoff) {
			entry.mu.Unlock()
			continue
		}
		candidates = append(candidates, idle{id: id, entry: entry})
	}
	s.mu.Unlock()

	evicted := 0
	for _, c := range candidates {
		if _, err := c.entry.session.Flush(ctx); err != nil {
			s.log.WarnContext(ctx, "idle session kept: pending writes",
				slog.String("session_id", c.id.String()),
				slog.Int("pending", c.entry.session.Pending()),
				slog.String("error", err.Error()))
			c.entry.mu.Unlock()
			continue
		}
		s.drop(c.id, c.entry)
		c.entry.mu.Unlock()
		evicted++
	}
	if evicted > 0 {
		s.log.InfoContext(ctx, "idle sessions evicted", slog.Int("count", evicted))
	}
	return evicted
}

// RunJanitor calls EvictIdle every Config.JanitorInterval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context) error {
	if s.cfg.JanitorInterval <= 0 || s.cfg.IdleTTL <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(s.cfg.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.EvictIdle(ctx)
		}
	}
}

func notModality(m domain.Modality) error {
	return domain.NewValidationError("session_id", fmt.Sprintf("not a %s session", strings.ToLower(m.String())))
}
