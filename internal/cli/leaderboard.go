package cli

import (
	"os"

	"github.com/spf13/cobra"

	"bleach-trivia/internal/config"
	"bleach-trivia/internal/infra/file"
	"bleach-trivia/internal/transport/console"
)

// NewLeaderboardCmd builds the CLI subcommand that prints the saved
// leaderboards without starting a game.
func NewLeaderboardCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the leaderboards and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(*configPath)
		},
	}
}

func runLeaderboard(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store := file.NewLeaderboardStore(cfg.Data.Leaderboard, cfg.Data.Fallback, cfg.ModeKeys(), newLogger())
	board := store.Load()

	ui := console.New(os.Stdin, os.Stdout)
	ui.ShowLeaderboards(board, cfg.GameModes())
	return nil
}
