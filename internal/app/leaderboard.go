package app

import (
	"fmt"
	"sort"

	"bleach-trivia/internal/domain"
)

// Scoreboard maintains the ranked score boards on the shared aggregate and
// persists after every mutation.
//
// The two ranking keys are intentionally different: within one mode every
// round has the same length, so raw score is the primary signal (ties broken
// by fewer questions); across modes raw scores aren't comparable, so the
// cross-mode board ranks by percentage with raw score as tie-break.
type Scoreboard struct {
	board *domain.Leaderboard
	max   int
	saver Saver
}

func NewScoreboard(board *domain.Leaderboard, max int, saver Saver) *Scoreboard {
	return &Scoreboard{board: board, max: max, saver: saver}
}

// RecordScore inserts the entry into its mode board and the cross-mode top
// scores, re-sorts both, truncates to the cap, and persists.
func (b *Scoreboard) RecordScore(entry domain.ScoreEntry) error {
	modeBoard := append(b.board.Modes[entry.Mode], entry)
	sort.SliceStable(modeBoard, func(i, j int) bool {
		if modeBoard[i].Score != modeBoard[j].Score {
			return modeBoard[i].Score > modeBoard[j].Score
		}
		return modeBoard[i].Total < modeBoard[j].Total
	})
	if len(modeBoard) > b.max {
		modeBoard = modeBoard[:b.max]
	}
	b.board.Modes[entry.Mode] = modeBoard

	top := append(b.board.TopScores, entry)
	sort.SliceStable(top, func(i, j int) bool {
		pi, pj := top[i].Percentage(), top[j].Percentage()
		if pi != pj {
			return pi > pj
		}
		return top[i].Score > top[j].Score
	})
	if len(top) > b.max {
		top = top[:b.max]
	}
	b.board.TopScores = top

	if err := b.saver.Save(b.board); err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// TopScores returns a copy of the board for the given mode key, or the
// cross-mode top scores when mode is empty.
func (b *Scoreboard) TopScores(mode string) []domain.ScoreEntry {
	var src []domain.ScoreEntry
	if mode == "" {
		src = b.board.TopScores
	} else {
		src = b.board.Modes[mode]
	}
	out := make([]domain.ScoreEntry, len(src))
	copy(out, src)
	return out
}
