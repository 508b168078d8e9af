package domain

import "fmt"

// Evaluation is the qualitative report produced for a writing submission.
type Evaluation struct {
	Score               int
	Strengths           []string
	AreasForImprovement []string
	DetailedAnalysis    string
}

// Validate checks that the score lies within 0..100.
func (e Evaluation) Validate() error {
	if e.Score < 0 || e.Score > 100 {
		return NewValidationError("score", fmt.Sprintf("must be between 0 and 100, got %d", e.Score))
	}
	return nil
}

// WordBounds is the inclusive word count range accepted for a submission.
type WordBounds struct {
	Min int
	Max int
}

// DefaultWordBounds is the 50..200 word range used by writing sessions.
var DefaultWordBounds = WordBounds{Min: 50, Max: 200}

// Check returns a ValidationError when text falls outside the bounds.
func (b WordBounds) Check(text string) error {
	n := CountWords(text)
	switch {
	case n < b.Min:
		return NewValidationError("text",
			fmt.Sprintf("writing is too short: please write at least %d words (got %d)", b.Min, n))
	case n > b.Max:
		return NewValidationError("text",
			fmt.Sprintf("writing is too long: please write no more than %d words (got %d)", b.Max, n))
	}
	return nil
}
