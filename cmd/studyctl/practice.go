package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/langportal-backend/internal/app"
	"github.com/heartmarshall/langportal-backend/internal/domain"
	"github.com/heartmarshall/langportal-backend/internal/service/practice"
)

type studyService interface {
	ListWritingPrompts(ctx context.Context, in practice.ListPromptsInput) ([]string, error)
	StartFlashcards(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartQuiz(ctx context.Context, in practice.StartInput) (practice.SessionView, error)
	StartWriting(ctx context.Context, in practice.StartWritingInput) (practice.SessionView, error)
	AnswerFlashcard(ctx context.Context, in practice.AnswerFlashcardInput) (practice.AdvanceOutput, error)
	AnswerQuiz(ctx context.Context, in practice.AnswerQuizInput) (practice.AdvanceOutput, error)
	SubmitWriting(ctx context.Context, in practice.SubmitWritingInput) (practice.AdvanceOutput, error)
	Summary(ctx context.Context, sessionID uuid.UUID) (domain.Summary, error)
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

type startFlags struct {
	group string
	count int
}

func (f *startFlags) register(cmd *cobra.Command, defaultCount int) {
	cmd.Flags().StringVar(&f.group, "group", "", "restrict items to a word group ID")
	cmd.Flags().IntVar(&f.count, "count", defaultCount, "number of items")
}

func (f *startFlags) input() (practice.StartInput, error) {
	in := practice.StartInput{Count: f.count}
	if f.group != "" {
		id, err := uuid.Parse(f.group)
		if err != nil {
			return practice.StartInput{}, domain.NewValidationError("group", "must be a UUID")
		}
		in.GroupID = &id
	}
	return in, nil
}

func newFlashcardsCmd(e *env) *cobra.Command {
	var flags startFlags
	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Run a flashcard session in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			return e.withRunner(cmd, func(r *runner) error {
				return r.runFlashcards(cmd.Context(), in)
			})
		},
	}
	flags.register(cmd, 10)
	return cmd
}

func newQuizCmd(e *env) *cobra.Command {
	var flags startFlags
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a multiple-choice quiz in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			return e.withRunner(cmd, func(r *runner) error {
				return r.runQuiz(cmd.Context(), in)
			})
		},
	}
	flags.register(cmd, 10)
	return cmd
}

func newWriteCmd(e *env) *cobra.Command {
	var (
		level string
		count int
	)
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Pick a prompt and submit a short essay for evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withRunner(cmd, func(r *runner) error {
				return r.runWriting(cmd.Context(), practice.ListPromptsInput{
					Count: count,
					Level: domain.WritingLevel(level),
				})
			})
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "beginner, intermediate or advanced (default from config)")
	cmd.Flags().IntVar(&count, "prompts", 5, "number of prompts to choose from")
	return cmd
}

// withRunner wires the practice service onto the database and hands fn a
// runner bound to the command's stdin and stdout.
func (e *env) withRunner(cmd *cobra.Command, fn func(r *runner) error) error {
	ctx := cmd.Context()

	pool, err := e.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	providers, err := app.NewProviders(ctx, e.cfg.LLM, e.logger)
	if err != nil {
		return err
	}
	_, svc := app.NewServices(e.logger, pool, providers, e.cfg)

	return fn(newRunner(svc, cmd.InOrStdin(), cmd.OutOrStdout()))
}

// ---------------------------------------------------------------------------
// Runner
// ---------------------------------------------------------------------------

// runner drives one session over a line-oriented terminal.
type runner struct {
	svc studyService
	in  *bufio.Scanner
	out io.Writer
}

func newRunner(svc studyService, in io.Reader, out io.Writer) *runner {
	return &runner{svc: svc, in: bufio.NewScanner(in), out: out}
}

func (r *runner) runFlashcards(ctx context.Context, in practice.StartInput) error {
	view, err := r.svc.StartFlashcards(ctx, in)
	if err != nil {
		return err
	}

	for view.Current != nil {
		card, ok := view.Current.(domain.WordItem)
		if !ok {
			return fmt.Errorf("unexpected item %T in flashcard session", view.Current)
		}

		r.printf("\n[%d/%d] %s\n", view.Cursor+1, view.Total, card.SourceText)
		if _, err := r.prompt("press Enter to reveal "); err != nil {
			return err
		}
		r.printf("  %s\n", card.TargetText)

		knew, err := r.askYesNo("did you know it? [y/n] ")
		if err != nil {
			return err
		}

		out, err := r.svc.AnswerFlashcard(ctx, practice.AnswerFlashcardInput{
			SessionID: view.ID,
			ItemID:    card.ID,
			KnewIt:    knew,
		})
		if err != nil {
			return err
		}
		r.warn(out.Warnings)
		view = out.Session
	}

	return r.printSummary(ctx, view.ID)
}

func (r *runner) runQuiz(ctx context.Context, in practice.StartInput) error {
	view, err := r.svc.StartQuiz(ctx, in)
	if err != nil {
		return err
	}

	for view.Current != nil {
		q, ok := view.Current.(domain.QuestionItem)
		if !ok {
			return fmt.Errorf("unexpected item %T in quiz session", view.Current)
		}

		r.printf("\n[%d/%d] %s\n", view.Cursor+1, view.Total, q.Prompt)
		for i, opt := range q.Options {
			r.printf("  %d) %s\n", i+1, opt)
		}

		selected, err := r.choose("answer: ", q.Options)
		if err != nil {
			return err
		}

		out, err := r.svc.AnswerQuiz(ctx, practice.AnswerQuizInput{
			SessionID:      view.ID,
			ItemID:         q.ID,
			SelectedOption: selected,
		})
		if err != nil {
			return err
		}

		if out.Response.IsCorrect != nil && *out.Response.IsCorrect {
			r.printf("  correct\n")
		} else {
			r.printf("  incorrect, the answer is %s\n", q.CorrectOption)
			if out.Response.Explanation != "" {
				r.printf("  %s\n", out.Response.Explanation)
			}
		}
		r.warn(out.Warnings)
		view = out.Session
	}

	return r.printSummary(ctx, view.ID)
}

func (r *runner) runWriting(ctx context.Context, in practice.ListPromptsInput) error {
	prompts, err := r.svc.ListWritingPrompts(ctx, in)
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		return domain.ErrEmptyCatalog
	}

	r.printf("Choose a prompt:\n")
	for i, p := range prompts {
		r.printf("  %d) %s\n", i+1, p)
	}
	prompt, err := r.choose("prompt: ", prompts)
	if err != nil {
		return err
	}

	view, err := r.svc.StartWriting(ctx, practice.StartWritingInput{Prompt: prompt, Level: in.Level})
	if err != nil {
		return err
	}
	item, ok := view.Current.(domain.WritingPromptItem)
	if !ok {
		return fmt.Errorf("unexpected item %T in writing session", view.Current)
	}

	for {
		r.printf("\n%s\nWrite your text, then a line with a single '.' to submit.\n", item.PromptText)
		text, err := r.readBlock()
		if err != nil {
			return err
		}

		out, err := r.svc.SubmitWriting(ctx, practice.SubmitWritingInput{
			SessionID: view.ID,
			ItemID:    item.ID,
			Text:      text,
		})
		if errors.Is(err, domain.ErrValidation) {
			r.printf("  %v\n", err)
			continue
		}
		if err != nil {
			return err
		}

		r.warn(out.Warnings)
		if fb := out.Response.Feedback; fb != nil {
			r.printFeedback(fb)
		}
		return nil
	}
}

func (r *runner) printSummary(ctx context.Context, sessionID uuid.UUID) error {
	sum, err := r.svc.Summary(ctx, sessionID)
	if err != nil {
		return err
	}

	r.printf("\n%d/%d correct (%d%%)\n", sum.CorrectCount, sum.TotalItems, sum.AccuracyPercent)
	for _, e := range sum.PerItem {
		mark := " "
		if e.IsCorrect != nil && !*e.IsCorrect {
			mark = "x"
		}
		r.printf("  %s %s = %s\n", mark, e.Prompt, e.Answer)
	}
	return nil
}

func (r *runner) printFeedback(fb *domain.Evaluation) {
	r.printf("\nscore: %d\n", fb.Score)
	if len(fb.Strengths) > 0 {
		r.printf("strengths:\n")
		for _, s := range fb.Strengths {
			r.printf("  + %s\n", s)
		}
	}
	if len(fb.AreasForImprovement) > 0 {
		r.printf("to improve:\n")
		for _, s := range fb.AreasForImprovement {
			r.printf("  - %s\n", s)
		}
	}
	if fb.DetailedAnalysis != "" {
		r.printf("\n%s\n", fb.DetailedAnalysis)
	}
}

func (r *runner) warn(warnings []error) {
	for _, w := range warnings {
		r.printf("  warning: %v\n", w)
	}
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

func (r *runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}

func (r *runner) prompt(label string) (string, error) {
	r.printf("%s", label)
	line, err := r.readLine()
	return strings.TrimSpace(line), err
}

func (r *runner) askYesNo(label string) (bool, error) {
	for {
		answer, err := r.prompt(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// choose accepts either a 1-based option number or the option text itself.
func (r *runner) choose(label string, options []string) (string, error) {
	for {
		answer, err := r.prompt(label)
		if err != nil {
			return "", err
		}
		if answer == "" {
			continue
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		return answer, nil
	}
}

func (r *runner) readBlock() (string, error) {
	var lines []string
	for {
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "." {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}
