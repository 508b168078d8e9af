package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/internal/service/practice"
	"github.com/samber/lo"
)

// practiceService defines the session operations used by SessionHandler.
type practiceService interface {
	ListWritingPrompts(ctx context.Context, in practice.ListPromptsInput) ([]string, error)
	StartFlashcards(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartQuiz(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartWriting(ctx context.Context, in practice.StartWritingInput) (practice.SessionView, error)
	Current(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	AnswerFlashcard(ctx context.Context, in practice.AnswerFlashcardInput) (practice.AdvanceOutput, error)
	AnswerQuiz(ctx context.Context, in practice.AnswerQuizInput) (practice.AdvanceOutput, error)
	SubmitWriting(ctx context.Context, in practice.SubmitWritingInput) (practice.AdvanceOutput, error)
	ResumeQuiz(ctx context.Context, in practice.ResumeQuizInput) (practice.SessionView, error)
	RetryWriting(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	Sync(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	Summary(ctx context.Context, sessionID uuid.UUID) (domain.Summary, error)
	Abandon(ctx context.Context, sessionID uuid.UUID) error
	History(ctx context.Context, limit int) ([]*domain.SessionRecord, error)
}

// SessionHandler serves the study session endpoints.
type SessionHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc practiceService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

// ListWritingPrompts handles GET /writing/prompts?count=&level=.
func (h *SessionHandler) ListWritingPrompts(w http.ResponseWriter, r *http.Request) {
	q := promptsQuery{Level: r.URL.Query().Get("level")}
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("count", "must be an integer"))
			return
		}
		q.Count = n
	}
	if err := validateStruct(q); err != nil {
		h.handleError(w, r, err)
		return
	}

	prompts, err := h.svc.ListWritingPrompts(r.Context(), practice.ListPromptsInput{
		Count: q.Count,
		Level: domain.WritingLevel(q.Level),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, promptsResponse{Level: q.Level, Prompts: lo.Ternary(prompts == nil, []string{}, prompts)})
}

// StartFlashcards handles POST /sessions/flashcards.
func (h *SessionHandler) StartFlashcards(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.svc.StartFlashcards)
}

// StartQuiz handles POST /sessions/quiz.
func (h *SessionHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, h.svc.StartQuiz)
}

func (h *SessionHandler) start(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, practice.StartInput) (practice.SessionView, error),
) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := fn(r.Context(), req.input())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// StartWriting handles POST /sessions/writing.
func (h *SessionHandler) StartWriting(w http.ResponseWriter, r *http.Request) {
	var req startWritingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.StartWriting(r.Context(), practice.StartWritingInput{
		Prompt: req.Prompt,
		Level:  domain.WritingLevel(req.Level),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// Current handles GET /sessions/{id}/current.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.viewOp(w, r, h.svc.Current)
}

// RetryWriting handles POST /sessions/{id}/writing/retry.
func (h *SessionHandler) RetryWriting(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.RetryWriting(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// Sync handles POST /sessions/{id}/sync.
func (h *SessionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	h.viewOp(w, r, h.svc.Sync)
}

func (h *SessionHandler) viewOp(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (practice.SessionView, error),
) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	view, err := fn(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// AnswerFlashcard handles POST /sessions/{id}/flashcards/answer.
func (h *SessionHandler) AnswerFlashcard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req flashcardAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	out, err := h.svc.AnswerFlashcard(r.Context(), practice.AnswerFlashcardInput{
		SessionID: id,
		ItemID:    uuid.MustParse(req.ItemID),
		KnewIt:    *req.KnewIt,
	})
	h.writeAdvance(w, r, out, err)
}

// AnswerQuiz handles POST /sessions/{id}/quiz/answer.
func (h *SessionHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req quizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	out, err := h.svc.AnswerQuiz(r.Context(), practice.AnswerQuizInput{
		SessionID:      id,
		ItemID:         uuid.MustParse(req.ItemID),
		SelectedOption: req.SelectedOption,
	})
	h.writeAdvance(w, r, out, err)
}

// SubmitWriting handles POST /sessions/{id}/writing/submit.
func (h *SessionHandler) SubmitWriting(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req writingSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	out, err := h.svc.SubmitWriting(r.Context(), practice.SubmitWritingInput{
		SessionID: id,
		ItemID:    uuid.MustParse(req.ItemID),
		Text:      req.Text,
	})
	h.writeAdvance(w, r, out, err)
}

func (h *SessionHandler) writeAdvance(w http.ResponseWriter, r *http.Request, out practice.AdvanceOutput, err error) {
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	for _, warn := range out.Warnings {
		h.log.WarnContext(r.Context(), "session warning",
			slog.String("session_id", out.Session.ID.String()),
			slog.String("error", warn.Error()),
		)
	}
	writeJSON(w, http.StatusOK, toAdvanceResponse(out))
}

// ResumeQuiz handles POST /sessions/{id}/quiz/resume.
func (h *SessionHandler) ResumeQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req resumeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.ResumeQuiz(r.Context(), practice.ResumeQuizInput{
		SessionID:            id,
		CurrentQuestionIndex: *req.CurrentQuestionIndex,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// Summary handles GET /sessions/{id}/summary.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	sum, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(sum))
}

// Abandon handles DELETE /sessions/{id}.
func (h *SessionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Abandon(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /sessions?limit=.
func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	recs, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(recs, toHistoryResponse))
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		h.handleError(w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
