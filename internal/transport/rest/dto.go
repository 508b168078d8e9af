package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/internal/service/practice"
	"github.com/samber/lo"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type startRequest struct {
	GroupID *string `json:"groupId" validate:"omitempty,uuid"`
	Count   int     `json:"count"   validate:"gte=0,lte=1000"`
}

func (r startRequest) input() practice.StartInput {
	in := practice.StartInput{Count: r.Count}
	if r.GroupID != nil {
		id := uuid.MustParse(*r.GroupID)
		in.GroupID = &id
	}
	return in
}

type startWritingRequest struct {
	Prompt string `json:"prompt" validate:"required,max=1000"`
	Level  string `json:"level"  validate:"omitempty,oneof=beginner intermediate advanced"`
}

type flashcardAnswerRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid"`
	KnewIt *bool  `json:"knewIt" validate:"required"`
}

type quizAnswerRequest struct {
	ItemID         string `json:"itemId"         validate:"required,uuid"`
	SelectedOption string `json:"selectedOption" validate:"required"`
}

type writingSubmitRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid"`
	Text   string `json:"text"`
}

type resumeRequest struct {
	CurrentQuestionIndex *int `json:"currentQuestionIndex" validate:"required,gte=0"`
}

type promptsQuery struct {
	Count int    `json:"count" validate:"gte=0,lte=20"`
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type itemResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Answer  string   `json:"answer,omitempty"`
	Options []string `json:"options,omitempty"`
	Level   string   `json:"level,omitempty"`
}

type sessionResponse struct {
	ID       string        `json:"id"`
	Modality string        `json:"modality"`
	Status   string        `json:"status"`
	Cursor   int           `json:"cursor"`
	Total    int           `json:"total"`
	Pending  int           `json:"pending"`
	Current  *itemResponse `json:"current"`
}

type evaluationResponse struct {
	Score               int      `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	DetailedAnalysis    string   `json:"detailedAnalysis"`
}

type answerResponse struct {
	ItemID         string              `json:"itemId"`
	SubmittedValue string              `json:"submittedValue"`
	IsCorrect      *bool               `json:"isCorrect,omitempty"`
	Explanation    string              `json:"explanation,omitempty"`
	Feedback       *evaluationResponse `json:"feedback,omitempty"`
	Timestamp      time.Time           `json:"timestamp"`
}

type warningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type advanceResponse struct {
	Session  sessionResponse   `json:"session"`
	Response answerResponse    `json:"response"`
	Warnings []warningResponse `json:"warnings,omitempty"`
}

type breakdownResponse struct {
	ItemID         string              `json:"itemId"`
	Prompt         string              `json:"prompt"`
	Answer         string              `json:"answer,omitempty"`
	Answered       bool                `json:"answered"`
	SubmittedValue string              `json:"submittedValue,omitempty"`
	IsCorrect      *bool               `json:"isCorrect,omitempty"`
	Explanation    string              `json:"explanation,omitempty"`
	Feedback       *evaluationResponse `json:"feedback,omitempty"`
}

type summaryResponse struct {
	SessionID       string              `json:"sessionId"`
	Modality        string              `json:"modality"`
	TotalItems      int                 `json:"totalItems"`
	CorrectCount    int                 `json:"correctCount"`
	AccuracyPercent int                 `json:"accuracyPercent"`
	Score           *int                `json:"score,omitempty"`
	PerItem         []breakdownResponse `json:"perItem"`
}

type historyResponse struct {
	ID              string     `json:"id"`
	Modality        string     `json:"modality"`
	Status          string     `json:"status"`
	TotalItems      int        `json:"totalItems"`
	AccuracyPercent *int       `json:"accuracyPercent,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

type groupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WordCount int    `json:"wordCount"`
}

type promptsResponse struct {
	Level   string   `json:"level,omitempty"`
	Prompts []string `json:"prompts"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func toItemResponse(item domain.Item) *itemResponse {
	if item == nil {
		return nil
	}
	resp := &itemResponse{ID: item.ItemID().String(), Text: item.DisplayText()}
	switch it := item.(type) {
	case domain.WordItem:
		resp.Answer = it.TargetText
	case domain.QuestionItem:
		// The correct option stays on the server.
		resp.Options = it.Options
	case domain.WritingPromptItem:
		resp.Level = it.Level.String()
	}
	return resp
}

func toSessionResponse(v practice.SessionView) sessionResponse {
	return sessionResponse{
		ID:       v.ID.String(),
		Modality: v.Modality.String(),
		Status:   v.Status.String(),
		Cursor:   v.Cursor,
		Total:    v.Total,
		Pending:  v.Pending,
		Current:  toItemResponse(v.Current),
	}
}

func toEvaluationResponse(e *domain.Evaluation) *evaluationResponse {
	if e == nil {
		return nil
	}
	return &evaluationResponse{
		Score:               e.Score,
		Strengths:           lo.Ternary(e.Strengths == nil, []string{}, e.Strengths),
		AreasForImprovement: lo.Ternary(e.AreasForImprovement == nil, []string{}, e.AreasForImprovement),
		DetailedAnalysis:    e.DetailedAnalysis,
	}
}

func toAdvanceResponse(out practice.AdvanceOutput) advanceResponse {
	r := out.Response
	return advanceResponse{
		Session: toSessionResponse(out.Session),
		Response: answerResponse{
			ItemID:         r.ItemID.String(),
			SubmittedValue: r.SubmittedValue,
			IsCorrect:      r.IsCorrect,
			Explanation:    r.Explanation,
			Feedback:       toEvaluationResponse(r.Feedback),
			Timestamp:      r.Timestamp,
		},
		Warnings: lo.Map(out.Warnings, func(err error, _ int) warningResponse {
			return warningResponse{Code: warningCode(err), Message: err.Error()}
		}),
	}
}

func toSummaryResponse(s domain.Summary) summaryResponse {
	return summaryResponse{
		SessionID:       s.SessionID.String(),
		Modality:        s.Modality.String(),
		TotalItems:      s.TotalItems,
		CorrectCount:    s.CorrectCount,
		AccuracyPercent: s.AccuracyPercent,
		Score:           s.Score,
		PerItem: lo.Map(s.PerItem, func(b domain.BreakdownEntry, _ int) breakdownResponse {
			return breakdownResponse{
				ItemID:         b.ItemID.String(),
				Prompt:         b.Prompt,
				Answer:         b.Answer,
				Answered:       b.Answered,
				SubmittedValue: b.SubmittedValue,
				IsCorrect:      b.IsCorrect,
				Explanation:    b.Explanation,
				Feedback:       toEvaluationResponse(b.Feedback),
			}
		}),
	}
}

func toHistoryResponse(rec *domain.SessionRecord, _ int) historyResponse {
	resp := historyResponse{
		ID:          rec.ID.String(),
		Modality:    rec.Modality.String(),
		Status:      rec.Status.String(),
		TotalItems:  len(rec.Items),
		CreatedAt:   rec.CreatedAt,
		CompletedAt: rec.CompletedAt,
	}
	if rec.Summary != nil {
		resp.TotalItems = rec.Summary.TotalItems
		resp.AccuracyPercent = &rec.Summary.AccuracyPercent
	}
	return resp
}

func toGroupResponse(g domain.Group, _ int) groupResponse {
	return groupResponse{ID: g.ID.String(), Name: g.Name, WordCount: g.WordCount}
}
