package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bleach-trivia/internal/app"
	"bleach-trivia/internal/config"
	"bleach-trivia/internal/infra/file"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "bleach-trivia",
		Short: "Command-line Bleach trivia with a persisted leaderboard",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewPlayCmd(&configPath))
	cmd.AddCommand(NewLeaderboardCmd(&configPath))
	return cmd
}

func newLogger() zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// buildGame loads the question data, validates it, and hydrates the
// leaderboard from disk. Missing or malformed question/answer files are fatal.
func buildGame(cfg config.Config, logger zerolog.Logger) (*app.Game, error) {
	questions, err := file.LoadQuestions(cfg.Data.Questions)
	if err != nil {
		return nil, err
	}
	answers, err := file.LoadAnswers(cfg.Data.Answers)
	if err != nil {
		return nil, err
	}
	store, err := app.NewQuestionStore(questions, answers)
	if err != nil {
		return nil, err
	}

	lbStore := file.NewLeaderboardStore(cfg.Data.Leaderboard, cfg.Data.Fallback, cfg.ModeKeys(), logger)
	board := lbStore.Load()
	return app.NewGame(store, cfg.GameModes(), board, lbStore, cfg.Game.MaxEntries), nil
}
