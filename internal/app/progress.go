package app

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"bleach-trivia/internal/domain"
)

// ProgressTracker tracks which questions each player has already answered so
// rounds never repeat a question until the pool is exhausted. Storage lives on
// the shared leaderboard aggregate; the tracker only interprets it.
type ProgressTracker struct {
	board *domain.Leaderboard
	total int
	saver Saver
	rnd   *rand.Rand
}

func NewProgressTracker(board *domain.Leaderboard, totalQuestions int, saver Saver, rnd *rand.Rand) *ProgressTracker {
	return &ProgressTracker{board: board, total: totalQuestions, saver: saver, rnd: rnd}
}

// Eligible returns the IDs the player has not answered this cycle, ascending.
func (t *ProgressTracker) Eligible(player string) []int {
	answered := t.answeredSet(player)
	eligible := make([]int, 0, t.total-len(answered))
	for id := 1; id <= t.total; id++ {
		if _, ok := answered[id]; !ok {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

// SelectRound draws the questions for one round of the given mode, uniformly
// without replacement. If fewer unanswered questions remain than the mode
// needs, the player's whole history is wiped first (a deliberate full reset
// rather than partial pruning, so nobody can get stuck unable to play). The
// returned order is the presentation order.
func (t *ProgressTracker) SelectRound(player string, mode domain.GameMode) ([]int, error) {
	eligible := t.Eligible(player)
	if len(eligible) < mode.Questions {
		t.board.Progress[player] = []string{}
		if err := t.saver.Save(t.board); err != nil {
			return nil, fmt.Errorf("reset progress for %s: %w", player, err)
		}
		eligible = t.Eligible(player)
	}

	t.rnd.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	need := mode.Questions
	if need > len(eligible) {
		need = len(eligible)
	}
	return eligible[:need], nil
}

// RecordAnswered unions the given IDs into the player's answered set. If the
// union covers every question the set is cleared immediately, so the player's
// next round starts a fresh cycle instead of hitting the reset mid-selection.
func (t *ProgressTracker) RecordAnswered(player string, ids []int) error {
	answered := t.answeredSet(player)
	for _, id := range ids {
		answered[id] = struct{}{}
	}

	if len(answered) >= t.total {
		t.board.Progress[player] = []string{}
	} else {
		keys := make([]int, 0, len(answered))
		for id := range answered {
			keys = append(keys, id)
		}
		sort.Ints(keys)
		list := make([]string, len(keys))
		for i, id := range keys {
			list[i] = strconv.Itoa(id)
		}
		t.board.Progress[player] = list
	}

	if err := t.saver.Save(t.board); err != nil {
		return fmt.Errorf("record answered for %s: %w", player, err)
	}
	return nil
}

func (t *ProgressTracker) answeredSet(player string) map[int]struct{} {
	answered := make(map[int]struct{})
	for _, raw := range t.board.Progress[player] {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 || id > t.total {
			continue
		}
		answered[id] = struct{}{}
	}
	return answered
}
