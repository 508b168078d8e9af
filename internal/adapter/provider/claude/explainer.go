// Package claude explains quiz answers with the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/langportal-backend/internal/domain"
)

const defaultMaxTokens = 256

// messages is the subset of the SDK message service used here.
type messages interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Config holds the Anthropic client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Explainer produces a short explanation for a quiz answer.
type Explainer struct {
	msgs    messages
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewExplainer creates an Explainer backed by the Anthropic API.
func NewExplainer(cfg Config, logger *slog.Logger) *Explainer {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	)
	return newExplainer(&client.Messages, cfg, logger)
}

func newExplainer(msgs messages, cfg Config, logger *slog.Logger) *Explainer {
	return &Explainer{
		msgs:    msgs,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "claude"),
	}
}

// Explain asks the model why the selected option is right or wrong.
func (e *Explainer) Explain(ctx context.Context, q domain.QuestionItem, selected string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	msg, err := e.msgs.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(q, selected))),
		},
	})
	if err != nil {
		e.log.ErrorContext(ctx, "explain request failed",
			slog.String("question_id", q.ID.String()),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude: explain %q: %w", q.Prompt, err)
	}

	text := firstText(msg)
	if text == "" {
		return "", fmt.Errorf("claude: explain %q: %w", q.Prompt, errEmptyResponse)
	}

	e.log.DebugContext(ctx, "explanation generated",
		slog.String("question_id", q.ID.String()),
		slog.Int("chars", len(text)))
	return text, nil
}

var errEmptyResponse = errors.New("empty response")

func firstText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	for _, block := range msg.Content {
		if t := strings.TrimSpace(block.Text); t != "" {
			return t
		}
	}
	return ""
}

func buildPrompt(q domain.QuestionItem, selected string) string {
	verdict := "incorrect"
	if selected == q.CorrectOption {
		verdict = "correct"
	}
	return fmt.Sprintf(`A language learner is practising vocabulary.

Word: "%s"
Options: %s
Learner's answer: "%s" (%s)
Correct translation: "%s"

In one or two short sentences, explain the meaning of the word and, if the
answer was wrong, how it differs from the learner's choice. Reply with plain
text only.`, q.Prompt, strings.Join(q.Options, ", "), selected, verdict, q.CorrectOption)
}
