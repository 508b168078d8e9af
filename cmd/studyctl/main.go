// Command studyctl is the operator and terminal client for the study engine.
//
// It applies migrations, seeds the word catalog from a JSON document and runs
// flashcard, quiz and writing sessions interactively against the database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/internal/app"
	"github.com/heartmarshall/langportal-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// env is the state shared by subcommands once the root has loaded config.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "studyctl",
		Short:        "Manage and practice with the study session engine",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", os.Getenv("CONFIG_PATH"), "path to config YAML file")

	root.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newFlashcardsCmd(e),
		newQuizCmd(e),
		newWriteCmd(e),
	)
	return root
}

func (e *env) connect(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}
