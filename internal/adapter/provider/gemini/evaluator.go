package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/llmjson"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

type evaluationJSON struct {
	Score    int `json:"score"`
	Feedback struct {
		Strengths           []string `json:"strengths"`
		AreasForImprovement []string `json:"areas_for_improvement"`
		DetailedAnalysis    string   `json:"detailed_analysis"`
	} `json:"feedback"`
}

// Evaluate scores a writing submission against its prompt.
func (c *Client) Evaluate(ctx context.Context, prompt domain.WritingPromptItem, text string) (domain.Evaluation, error) {
	out, err := c.generateJSON(ctx, "evaluate", evaluationPrompt(prompt, text))
	if err != nil {
		return domain.Evaluation{}, err
	}

	var j evaluationJSON
	if err := llmjson.Decode(out, false, &j); err != nil {
		c.log.WarnContext(ctx, "unparseable evaluation", slog.String("error", err.Error()))
		return domain.Evaluation{}, fmt.Errorf("gemini: evaluate: %w", err)
	}

	return domain.Evaluation{
		Score:               j.Score,
		Strengths:           j.Feedback.Strengths,
		AreasForImprovement: j.Feedback.AreasForImprovement,
		DetailedAnalysis:    j.Feedback.DetailedAnalysis,
	}, nil
}

func evaluationPrompt(prompt domain.WritingPromptItem, text string) string {
	return fmt.Sprintf(`You are a language teacher evaluating a student's writing.

Level: %s
Prompt: %s

Student's response:
%s

Evaluate the writing and respond with ONLY a JSON object in this format:
{
  "score": <integer from 0 to 100>,
  "feedback": {
    "strengths": ["<strength>", "..."],
    "areas_for_improvement": ["<area>", "..."],
    "detailed_analysis": "<a paragraph covering grammar, vocabulary, structure and relevance to the prompt>"
  }
}`, prompt.Level, prompt.PromptText, text)
}
