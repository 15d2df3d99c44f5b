package app

import (
	"fmt"
	"strings"

	"bleach-trivia/internal/domain"
)

type roundState int

const (
	stateModeSelect roundState = iota
	statePlaying
	stateScoring
	stateDone
)

// AnswerOutcome reports how one submitted answer was scored.
type AnswerOutcome struct {
	Correct      bool
	CorrectLabel string
}

// RoundResult is the final score pair for a completed round.
type RoundResult struct {
	Score int
	Total int
}

// Round drives a single play-through: mode selection, the blocking
// question/answer exchange with the caller, and the final commit to progress
// and leaderboard. One Round per play; create a new one for the next game.
type Round struct {
	game   *Game
	player string

	state roundState
	mode  domain.GameMode
	ids   []int
	idx   int
	score int
}

// NewRound creates a round for the player, starting in mode selection.
func (g *Game) NewRound(player string) *Round {
	return &Round{game: g, player: player, state: stateModeSelect}
}

// Start accepts a mode key and moves the round into play. A mode whose length
// exceeds the total question count is rejected with ErrNotEnoughQuestions and
// the round stays in mode selection with no state mutated.
func (r *Round) Start(modeKey string) error {
	if r.state != stateModeSelect {
		return fmt.Errorf("%w: start after mode selection", domain.ErrRoundState)
	}
	mode, ok := r.game.Mode(modeKey)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, modeKey)
	}
	if r.game.store.Count() < mode.Questions {
		return fmt.Errorf("%w: %s needs %d, only %d exist", domain.ErrNotEnoughQuestions, mode.Name, mode.Questions, r.game.store.Count())
	}

	ids, err := r.game.progress.SelectRound(r.player, mode)
	if err != nil {
		return err
	}
	r.mode = mode
	r.ids = ids
	r.idx = 0
	r.score = 0
	r.state = statePlaying
	return nil
}

// Total is the number of questions in the round.
func (r *Round) Total() int {
	return len(r.ids)
}

// Playing reports whether a question is awaiting an answer.
func (r *Round) Playing() bool {
	return r.state == statePlaying
}

// Current yields the question awaiting an answer and its 1-based position.
// A lookup failure here means the loaded data files are inconsistent and is
// fatal; callers must not retry.
func (r *Round) Current() (int, domain.Question, error) {
	if r.state != statePlaying {
		return 0, domain.Question{}, fmt.Errorf("%w: no question in play", domain.ErrRoundState)
	}
	q, err := r.game.store.Question(r.ids[r.idx])
	if err != nil {
		return 0, domain.Question{}, err
	}
	return r.idx + 1, q, nil
}

// Submit scores the answer label for the current question case-insensitively
// and advances. After the last question the round moves to scoring.
func (r *Round) Submit(label string) (AnswerOutcome, error) {
	if r.state != statePlaying {
		return AnswerOutcome{}, fmt.Errorf("%w: no question in play", domain.ErrRoundState)
	}
	correct, err := r.game.store.CorrectAnswer(r.ids[r.idx])
	if err != nil {
		return AnswerOutcome{}, err
	}

	outcome := AnswerOutcome{CorrectLabel: correct}
	if strings.EqualFold(label, correct) {
		outcome.Correct = true
		r.score++
	}

	r.idx++
	if r.idx == len(r.ids) {
		r.state = stateScoring
	}
	return outcome, nil
}

// Finish commits the round: records the answered questions, inserts the score
// entry, and returns the final score pair. The round is terminal afterwards.
func (r *Round) Finish() (RoundResult, error) {
	if r.state != stateScoring {
		return RoundResult{}, fmt.Errorf("%w: round not fully played", domain.ErrRoundState)
	}
	if err := r.game.progress.RecordAnswered(r.player, r.ids); err != nil {
		return RoundResult{}, err
	}
	entry := domain.ScoreEntry{
		Name:  r.player,
		Score: r.score,
		Total: len(r.ids),
		Mode:  r.mode.Key,
		Date:  r.game.now().Format("2006-01-02 15:04"),
	}
	if err := r.game.scoreboard.RecordScore(entry); err != nil {
		return RoundResult{}, err
	}
	r.state = stateDone
	return RoundResult{Score: r.score, Total: len(r.ids)}, nil
}
