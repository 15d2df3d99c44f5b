package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bleach-trivia/internal/app"
	"bleach-trivia/internal/config"
	"bleach-trivia/internal/domain"
	"bleach-trivia/internal/transport/console"
)

// NewPlayCmd builds the CLI subcommand for an interactive game session.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a trivia game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(*configPath)
		},
	}
}

func runPlay(configPath string) error {
	logger := newLogger()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	game, err := buildGame(cfg, logger)
	if err != nil {
		return err
	}
	// The save must run on every exit path: normal quit, interrupt, or fault.
	defer func() {
		if err := game.Save(); err != nil {
			logger.Error().Err(err).Msg("final leaderboard save failed")
		}
	}()

	ui := console.New(os.Stdin, os.Stdout)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- gameLoop(game, cfg, ui)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, io.EOF) {
			// Input closed; treat like a quit.
			return nil
		}
		return err
	case <-stop:
		ui.ShowGoodbye()
		return nil
	}
}

func gameLoop(game *app.Game, cfg config.Config, ui *console.Console) error {
	ui.ShowWelcome()
	player, err := ui.PromptName(cfg.Game.MaxName)
	if err != nil {
		return err
	}

	for {
		choice, err := ui.ShowMenu("Main Menu", []string{"Play Game", "View Leaderboards", "Exit"})
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := playRound(game, ui, player); err != nil {
				return err
			}
		case 2:
			ui.ShowLeaderboards(game.Board(), game.Modes())
		case 3:
			ui.ShowGoodbye()
			return nil
		}
	}
}

// playRound runs one round: mode menu, question loop, scoring. A rejected mode
// (not enough unique questions) re-prompts; data-integrity failures propagate.
func playRound(game *app.Game, ui *console.Console, player string) error {
	modes := game.Modes()
	options := make([]string, 0, len(modes)+1)
	for _, m := range modes {
		options = append(options, fmt.Sprintf("%s - %s", m.Name, m.Description))
	}
	options = append(options, "Back to Main Menu")

	for {
		choice, err := ui.ShowMenu("Game Modes", options)
		if err != nil {
			return err
		}
		if choice == len(options) {
			return nil
		}
		mode := modes[choice-1]

		round := game.NewRound(player)
		if err := round.Start(mode.Key); err != nil {
			if errors.Is(err, domain.ErrNotEnoughQuestions) {
				ui.ShowNotEnoughQuestions(mode)
				continue
			}
			return err
		}
		ui.ShowRoundStart(mode, round.Total())

		for round.Playing() {
			num, q, err := round.Current()
			if err != nil {
				return err
			}
			ui.ShowQuestion(num, round.Total(), q)
			label, err := ui.PromptAnswer(q.Labels())
			if err != nil {
				return err
			}
			outcome, err := round.Submit(label)
			if err != nil {
				return err
			}
			ui.ShowOutcome(outcome)
		}

		result, err := round.Finish()
		if err != nil {
			return err
		}
		ui.ShowResult(result)
		ui.ShowLeaderboards(game.Board(), game.Modes())
		return nil
	}
}
