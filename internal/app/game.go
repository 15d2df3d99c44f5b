package app

import (
	"math/rand"
	"time"

	"bleach-trivia/internal/domain"
)

// Saver persists the leaderboard aggregate. The file store implements this;
// tests substitute an in-memory recorder.
type Saver interface {
	Save(lb *domain.Leaderboard) error
}

// Game owns the shared leaderboard aggregate and wires the question store,
// progress tracker and scoreboard together. One Game lives per process; rounds
// are created per play-through and discarded afterwards.
type Game struct {
	store *QuestionStore
	modes []domain.GameMode
	board *domain.Leaderboard
	saver Saver

	progress   *ProgressTracker
	scoreboard *Scoreboard
	now        func() time.Time
}

// NewGame builds a game over a loaded question store and leaderboard aggregate.
// maxEntries caps every board (per-mode and cross-mode).
func NewGame(store *QuestionStore, modes []domain.GameMode, board *domain.Leaderboard, saver Saver, maxEntries int) *Game {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewGameWithClock(store, modes, board, saver, maxEntries, time.Now, rnd)
}

// NewGameWithClock is test-only for deterministic timestamps and sampling.
func NewGameWithClock(store *QuestionStore, modes []domain.GameMode, board *domain.Leaderboard, saver Saver, maxEntries int, now func() time.Time, rnd *rand.Rand) *Game {
	return &Game{
		store:      store,
		modes:      modes,
		board:      board,
		saver:      saver,
		progress:   NewProgressTracker(board, store.Count(), saver, rnd),
		scoreboard: NewScoreboard(board, maxEntries, saver),
		now:        now,
	}
}

// Modes returns the configured game modes in menu order.
func (g *Game) Modes() []domain.GameMode {
	return g.modes
}

// Mode looks up a mode by key.
func (g *Game) Mode(key string) (domain.GameMode, bool) {
	for _, m := range g.modes {
		if m.Key == key {
			return m, true
		}
	}
	return domain.GameMode{}, false
}

// Questions exposes the read-only question store.
func (g *Game) Questions() *QuestionStore {
	return g.store
}

// Progress exposes the per-player progress tracker.
func (g *Game) Progress() *ProgressTracker {
	return g.progress
}

// Scoreboard exposes the leaderboard service.
func (g *Game) Scoreboard() *Scoreboard {
	return g.scoreboard
}

// Board returns the shared leaderboard aggregate for rendering.
func (g *Game) Board() *domain.Leaderboard {
	return g.board
}

// Save writes the aggregate out explicitly. The CLI calls this on every exit
// path so an interrupt still gets a best-effort final write.
func (g *Game) Save() error {
	return g.saver.Save(g.board)
}
