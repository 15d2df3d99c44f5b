// Package console is the interactive collaborator for the game core: it
// renders menus, questions and leaderboards, and runs the validation loops so
// the core only ever receives already-validated input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"bleach-trivia/internal/app"
	"bleach-trivia/internal/domain"
)

var nameRE = regexp.MustCompile(`^[A-Za-z0-9 _.\-]+$`)

const separator = "--------------------------------------------------"

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ShowWelcome prints the banner.
func (c *Console) ShowWelcome() {
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, "BLEACH TRIVIA")
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, "Welcome to Bleach Trivia! Test your knowledge of the Bleach universe.")
}

// PromptName loops until the player enters a valid name: 1..maxLen characters,
// letters, digits, and ' _-.' only.
func (c *Console) PromptName(maxLen int) (string, error) {
	for {
		fmt.Fprint(c.out, "\nEnter your name: ")
		name, err := c.readLine()
		if err != nil {
			return "", err
		}
		if len(name) >= 1 && len(name) <= maxLen && nameRE.MatchString(name) {
			return name, nil
		}
		fmt.Fprintf(c.out, "Name must be 1-%d characters: letters, numbers, and ' _-.' only.\n", maxLen)
	}
}

// PromptChoice loops until the player enters a number in [min, max].
func (c *Console) PromptChoice(prompt string, min, max int) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		raw, err := c.readLine()
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(raw)
		if convErr == nil && choice >= min && choice <= max {
			return choice, nil
		}
		fmt.Fprintf(c.out, "Please enter a number between %d and %d.\n", min, max)
	}
}

// PromptAnswer loops until the player enters one of the question's option
// labels, returned uppercased.
func (c *Console) PromptAnswer(labels []string) (string, error) {
	valid := make(map[string]bool, len(labels))
	for _, l := range labels {
		valid[strings.ToUpper(l)] = true
	}
	choices := strings.Join(labels, "/")
	for {
		fmt.Fprintf(c.out, "Your answer (%s): ", choices)
		raw, err := c.readLine()
		if err != nil {
			return "", err
		}
		answer := strings.ToUpper(raw)
		if valid[answer] {
			return answer, nil
		}
		fmt.Fprintf(c.out, "Invalid input. Please enter one of %s.\n", choices)
	}
}

// ShowMenu renders a numbered menu and returns the chosen 1-based index.
func (c *Console) ShowMenu(title string, options []string) (int, error) {
	fmt.Fprintf(c.out, "\n%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, opt)
	}
	return c.PromptChoice(fmt.Sprintf("\nSelect an option (1-%d): ", len(options)), 1, len(options))
}

// ShowRoundStart announces the round.
func (c *Console) ShowRoundStart(mode domain.GameMode, total int) {
	fmt.Fprintf(c.out, "\nStarting %s with %d questions!\n", mode.Name, total)
}

// ShowQuestion renders one question with its options in label order.
func (c *Console) ShowQuestion(number, total int, q domain.Question) {
	fmt.Fprintf(c.out, "\nQuestion %d of %d:\n", number, total)
	fmt.Fprintln(c.out, q.Text)
	for _, label := range q.Labels() {
		fmt.Fprintf(c.out, "%s. %s\n", label, q.Options[label])
	}
}

// ShowOutcome gives per-question feedback.
func (c *Console) ShowOutcome(outcome app.AnswerOutcome) {
	if outcome.Correct {
		fmt.Fprintln(c.out, "Correct!")
	} else {
		fmt.Fprintf(c.out, "Wrong! The correct answer was %s.\n", outcome.CorrectLabel)
	}
}

// ShowResult prints the final score for a round.
func (c *Console) ShowResult(result app.RoundResult) {
	fmt.Fprintf(c.out, "\nGame Over! Your score: %d/%d\n", result.Score, result.Total)
}

// ShowNotEnoughQuestions reports a rejected mode selection.
func (c *Console) ShowNotEnoughQuestions(mode domain.GameMode) {
	fmt.Fprintf(c.out, "\nNot enough unique questions available for %s.\n", mode.Name)
	fmt.Fprintln(c.out, "Please play a different mode.")
}

// ShowLeaderboards renders the cross-mode top scores followed by each mode's
// board as fixed-width tables.
func (c *Console) ShowLeaderboards(board *domain.Leaderboard, modes []domain.GameMode) {
	fmt.Fprintln(c.out, "\n--- Leaderboards ---")

	if len(board.TopScores) > 0 {
		fmt.Fprintln(c.out, "\nTop Scores (All Modes):")
		fmt.Fprintln(c.out, "Rank | Name           | Score | Total | Mode   | %")
		fmt.Fprintln(c.out, separator)
		for i, entry := range board.TopScores {
			fmt.Fprintf(c.out, "%4d | %-14s | %5d | %5d | %-6s | %.1f%%\n",
				i+1, truncate(entry.Name, 14), entry.Score, entry.Total, entry.Mode, entry.Percentage()*100)
		}
	} else {
		fmt.Fprintln(c.out, "\nNo top scores yet. Be the first to play!")
	}

	for _, mode := range modes {
		entries := board.Modes[mode.Key]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(c.out, "\n---------- %s MODE ----------\n", strings.ToUpper(mode.Key))
		fmt.Fprintln(c.out, "Rank | Name           | Score | Total | %")
		fmt.Fprintln(c.out, separator[:40])
		for i, entry := range entries {
			fmt.Fprintf(c.out, "%4d | %-14s | %5d | %5d | %.1f%%\n",
				i+1, truncate(entry.Name, 14), entry.Score, entry.Total, entry.Percentage()*100)
		}
	}
}

// ShowGoodbye prints the exit message.
func (c *Console) ShowGoodbye() {
	fmt.Fprintln(c.out, "\nThanks for playing Bleach Trivia!")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
