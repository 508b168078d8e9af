package session

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// Domain types have no json tags, so the repo layer owns the JSONB layout.

// itemJSON is the union of the three item kinds. The session modality
// decides which fields are read back.
type itemJSON struct {
	ID            uuid.UUID `json:"id"`
	SourceText    string    `json:"source_text,omitempty"`
	TargetText    string    `json:"target_text,omitempty"`
	WordID        uuid.UUID `json:"word_id,omitzero"`
	Prompt        string    `json:"prompt,omitempty"`
	Options       []string  `json:"options,omitempty"`
	CorrectOption string    `json:"correct_option,omitempty"`
	Level         string    `json:"level,omitempty"`
}

type evaluationJSON struct {
	Score               int      `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	DetailedAnalysis    string   `json:"detailed_analysis"`
}

type summaryJSON struct {
	SessionID       uuid.UUID       `json:"session_id"`
	Modality        string          `json:"modality"`
	TotalItems      int             `json:"total_items"`
	CorrectCount    int             `json:"correct_count"`
	AccuracyPercent int             `json:"accuracy_percent"`
	Score           *int            `json:"score,omitempty"`
	PerItem         []breakdownJSON `json:"per_item"`
}

type breakdownJSON struct {
	ItemID         uuid.UUID       `json:"item_id"`
	Prompt         string          `json:"prompt"`
	Answer         string          `json:"answer,omitempty"`
	Answered       bool            `json:"answered"`
	SubmittedValue string          `json:"submitted_value,omitempty"`
	IsCorrect      *bool           `json:"is_correct,omitempty"`
	Explanation    string          `json:"explanation,omitempty"`
	Feedback       *evaluationJSON `json:"feedback,omitempty"`
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

func marshalItems(items []domain.Item) ([]byte, error) {
	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case domain.WordItem:
			out = append(out, itemJSON{ID: v.ID, SourceText: v.SourceText, TargetText: v.TargetText})
		case domain.QuestionItem:
			out = append(out, itemJSON{
				ID:            v.ID,
				WordID:        v.WordID,
				Prompt:        v.Prompt,
				Options:       v.Options,
				CorrectOption: v.CorrectOption,
			})
		case domain.WritingPromptItem:
			out = append(out, itemJSON{ID: v.ID, Prompt: v.PromptText, Level: string(v.Level)})
		default:
			return nil, fmt.Errorf("marshal items: unsupported item type %T", it)
		}
	}
	return json.Marshal(out)
}

func unmarshalItems(modality domain.Modality, data []byte) ([]domain.Item, error) {
	var raw []itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}

	items := make([]domain.Item, 0, len(raw))
	for _, j := range raw {
		switch modality {
		case domain.ModalityFlashcard:
			items = append(items, domain.WordItem{ID: j.ID, SourceText: j.SourceText, TargetText: j.TargetText})
		case domain.ModalityQuiz:
			items = append(items, domain.QuestionItem{
				ID:            j.ID,
				WordID:        j.WordID,
				Prompt:        j.Prompt,
				Options:       j.Options,
				CorrectOption: j.CorrectOption,
			})
		case domain.ModalityWriting:
			items = append(items, domain.WritingPromptItem{ID: j.ID, PromptText: j.Prompt, Level: domain.WritingLevel(j.Level)})
		default:
			return nil, fmt.Errorf("unmarshal items: unknown modality %q", modality)
		}
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

func toEvaluationJSON(e *domain.Evaluation) *evaluationJSON {
	if e == nil {
		return nil
	}
	return &evaluationJSON{
		Score:               e.Score,
		Strengths:           e.Strengths,
		AreasForImprovement: e.AreasForImprovement,
		DetailedAnalysis:    e.DetailedAnalysis,
	}
}

func fromEvaluationJSON(j *evaluationJSON) *domain.Evaluation {
	if j == nil {
		return nil
	}
	return &domain.Evaluation{
		Score:               j.Score,
		Strengths:           j.Strengths,
		AreasForImprovement: j.AreasForImprovement,
		DetailedAnalysis:    j.DetailedAnalysis,
	}
}

// marshalEvaluation returns nil for nil input, stored as NULL.
func marshalEvaluation(e *domain.Evaluation) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(toEvaluationJSON(e))
}

func unmarshalEvaluation(data []byte) (*domain.Evaluation, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var j evaluationJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unmarshal feedback: %w", err)
	}
	return fromEvaluationJSON(&j), nil
}

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

func marshalSummary(s domain.Summary) ([]byte, error) {
	j := summaryJSON{
		SessionID:       s.SessionID,
		Modality:        string(s.Modality),
		TotalItems:      s.TotalItems,
		CorrectCount:    s.CorrectCount,
		AccuracyPercent: s.AccuracyPercent,
		Score:           s.Score,
		PerItem:         make([]breakdownJSON, 0, len(s.PerItem)),
	}
	for _, e := range s.PerItem {
		j.PerItem = append(j.PerItem, breakdownJSON{
			ItemID:         e.ItemID,
			Prompt:         e.Prompt,
			Answer:         e.Answer,
			Answered:       e.Answered,
			SubmittedValue: e.SubmittedValue,
			IsCorrect:      e.IsCorrect,
			Explanation:    e.Explanation,
			Feedback:       toEvaluationJSON(e.Feedback),
		})
	}
	return json.Marshal(j)
}

// unmarshalSummary returns nil for NULL.
func unmarshalSummary(data []byte) (*domain.Summary, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var j summaryJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}

	s := &domain.Summary{
		SessionID:       j.SessionID,
		Modality:        domain.Modality(j.Modality),
		TotalItems:      j.TotalItems,
		CorrectCount:    j.CorrectCount,
		AccuracyPercent: j.AccuracyPercent,
		Score:           j.Score,
		PerItem:         make([]domain.BreakdownEntry, 0, len(j.PerItem)),
	}
	for _, e := range j.PerItem {
		s.PerItem = append(s.PerItem, domain.BreakdownEntry{
			ItemID:         e.ItemID,
			Prompt:         e.Prompt,
			Answer:         e.Answer,
			Answered:       e.Answered,
			SubmittedValue: e.SubmittedValue,
			IsCorrect:      e.IsCorrect,
			Explanation:    e.Explanation,
			Feedback:       fromEvaluationJSON(e.Feedback),
		})
	}
	return s, nil
}
