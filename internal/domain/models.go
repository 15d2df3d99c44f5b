package domain

import "sort"

// Question is a multiple-choice question. IDs are 1-based and stable for the
// lifetime of the process; the content is never mutated after load.
type Question struct {
	ID      int               `json:"id"`
	Text    string            `json:"question"`
	Options map[string]string `json:"options"`
}

// Labels returns the option labels in display order (A, B, C, D).
func (q Question) Labels() []string {
	labels := make([]string, 0, len(q.Options))
	for label := range q.Options {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// GameMode is a named preset defining how many questions make up one round.
type GameMode struct {
	Key         string
	Name        string
	Questions   int
	Description string
}

// ScoreEntry records the outcome of one completed round. Entries are immutable
// once appended to a leaderboard.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Total int    `json:"total"`
	Mode  string `json:"mode"`
	Date  string `json:"date"`
}

// Percentage is the fraction of correct answers, used to rank entries across
// modes of different lengths.
func (e ScoreEntry) Percentage() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Score) / float64(e.Total)
}

// Leaderboard is the single persisted aggregate: per-mode score boards, the
// cross-mode top scores, and each player's answered-question history.
type Leaderboard struct {
	Modes     map[string][]ScoreEntry
	TopScores []ScoreEntry
	Progress  map[string][]string
}

// NewLeaderboard returns an empty aggregate with a board per mode key.
func NewLeaderboard(modeKeys []string) *Leaderboard {
	modes := make(map[string][]ScoreEntry, len(modeKeys))
	for _, key := range modeKeys {
		modes[key] = []ScoreEntry{}
	}
	return &Leaderboard{
		Modes:     modes,
		TopScores: []ScoreEntry{},
		Progress:  map[string][]string{},
	}
}
