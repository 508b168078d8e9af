package domain

import (
	"math"

	"github.com/google/uuid"
)

// Summary is the final report of a completed session.
type Summary struct {
	SessionID       uuid.UUID
	Modality        Modality
	TotalItems      int
	CorrectCount    int
	AccuracyPercent int
	// Score is the raw evaluation score; set for writing sessions only, where
	// it also replaces AccuracyPercent.
	Score   *int
	PerItem []BreakdownEntry
}

// BreakdownEntry describes one item of a summary.
type BreakdownEntry struct {
	ItemID         uuid.UUID
	Prompt         string
	Answer         string
	Answered       bool
	SubmittedValue string
	IsCorrect      *bool
	Explanation    string
	Feedback       *Evaluation
}

// Accuracy returns round(100*correct/total), or 0 when total is 0.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Summarize reduces a complete session to its Summary. The breakdown follows
// item order and the total is taken from the item sequence.
func Summarize[I Item](s SessionState[I]) (Summary, error) {
	if s.Status != SessionStatusComplete {
		return Summary{}, ErrSessionNotComplete
	}

	sum := Summary{
		SessionID:  s.SessionID,
		Modality:   s.Modality,
		TotalItems: len(s.Items),
		PerItem:    make([]BreakdownEntry, 0, len(s.Items)),
	}

	for _, item := range s.Items {
		entry := BreakdownEntry{
			ItemID: item.ItemID(),
			Prompt: item.DisplayText(),
			Answer: item.ExpectedText(),
		}
		if r, ok := s.responses[item.ItemID()]; ok {
			entry.Answered = true
			entry.SubmittedValue = r.SubmittedValue
			entry.IsCorrect = r.IsCorrect
			entry.Explanation = r.Explanation
			entry.Feedback = r.Feedback
			if r.IsCorrect != nil && *r.IsCorrect {
				sum.CorrectCount++
			}
		}
		sum.PerItem = append(sum.PerItem, entry)
	}

	if s.Modality == ModalityWriting {
		score := 0
		if len(sum.PerItem) > 0 && sum.PerItem[0].Feedback != nil {
			score = sum.PerItem[0].Feedback.Score
		}
		sum.Score = &score
		sum.AccuracyPercent = score
		return sum, nil
	}

	sum.AccuracyPercent = Accuracy(sum.CorrectCount, sum.TotalItems)
	return sum, nil
}
