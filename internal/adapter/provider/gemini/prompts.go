package gemini

import (
	"context"
	"fmt"

	"github.com/heartmarshall/langportal-backend/internal/adapter/provider/llmjson"
	"github.com/heartmarshall/langportal-backend/internal/domain"
)

// GeneratePrompts asks for count writing prompts suited to level.
func (c *Client) GeneratePrompts(ctx context.Context, count int, level domain.WritingLevel) ([]string, error) {
	out, err := c.generateJSON(ctx, "generate prompts", promptsPrompt(count, level))
	if err != nil {
		return nil, err
	}

	var prompts []string
	if err := llmjson.Decode(out, true, &prompts); err != nil {
		return nil, fmt.Errorf("gemini: generate prompts: %w", err)
	}
	return prompts, nil
}

func promptsPrompt(count int, level domain.WritingLevel) string {
	return fmt.Sprintf(`Generate %d writing prompts for %s level language learners.
Each prompt should ask for a short piece of writing (50 to 200 words) about
everyday topics, personal experiences or opinions.

Respond with ONLY a JSON array of strings, for example:
["Write about your favorite holiday", "Describe your best friend"]`, count, level)
}
