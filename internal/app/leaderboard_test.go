package app_test

import (
	"testing"

	"bleach-trivia/internal/domain"
)

func TestModeBoardRanksByRawScore(t *testing.T) {
	game, _ := newTestGame(t, 5)
	board := game.Scoreboard()

	entries := []domain.ScoreEntry{
		{Name: "Ichigo", Score: 3, Total: 5, Mode: "short", Date: "2025-06-01 12:00"},
		{Name: "Ichigo", Score: 5, Total: 5, Mode: "short", Date: "2025-06-01 12:10"},
	}
	for _, e := range entries {
		if err := board.RecordScore(e); err != nil {
			t.Fatalf("record score: %v", err)
		}
	}

	top := board.TopScores("short")
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Score != 5 {
		t.Fatalf("expected the 5-correct entry first, got %+v", top[0])
	}
}

func TestModeBoardTieBreaksByFewerQuestions(t *testing.T) {
	game, _ := newTestGame(t, 5)
	board := game.Scoreboard()

	if err := board.RecordScore(domain.ScoreEntry{Name: "A", Score: 4, Total: 20, Mode: "medium"}); err != nil {
		t.Fatalf("record score: %v", err)
	}
	if err := board.RecordScore(domain.ScoreEntry{Name: "B", Score: 4, Total: 5, Mode: "medium"}); err != nil {
		t.Fatalf("record score: %v", err)
	}

	top := board.TopScores("medium")
	if top[0].Name != "B" {
		t.Fatalf("expected equal scores to rank the smaller total first, got %+v", top[0])
	}
}

func TestBoardsTruncateToCap(t *testing.T) {
	game, _ := newTestGame(t, 5)
	board := game.Scoreboard()

	for i := 0; i < 13; i++ {
		e := domain.ScoreEntry{Name: "P", Score: i % 6, Total: 5, Mode: "short"}
		if err := board.RecordScore(e); err != nil {
			t.Fatalf("record score %d: %v", i, err)
		}
	}

	if got := len(board.TopScores("short")); got != 10 {
		t.Fatalf("expected mode board capped at 10, got %d", got)
	}
	if got := len(board.TopScores("")); got != 10 {
		t.Fatalf("expected top scores capped at 10, got %d", got)
	}

	// Sorted after every insert: score desc within the mode board.
	top := board.TopScores("short")
	for i := 1; i < len(top); i++ {
		if top[i-1].Score < top[i].Score {
			t.Fatalf("mode board out of order at %d: %+v", i, top)
		}
	}
}

func TestTopScoresRankByPercentageAcrossModes(t *testing.T) {
	game, _ := newTestGame(t, 5)
	board := game.Scoreboard()

	// 15/20 is a higher raw score but a lower percentage than 4/5.
	if err := board.RecordScore(domain.ScoreEntry{Name: "Uryu", Score: 15, Total: 20, Mode: "medium"}); err != nil {
		t.Fatalf("record score: %v", err)
	}
	if err := board.RecordScore(domain.ScoreEntry{Name: "Yoruichi", Score: 4, Total: 5, Mode: "short"}); err != nil {
		t.Fatalf("record score: %v", err)
	}

	top := board.TopScores("")
	if top[0].Name != "Yoruichi" {
		t.Fatalf("expected the 80%% entry above the 75%% one, got %+v", top[0])
	}
}

func TestRecordScorePersistsEveryMutation(t *testing.T) {
	game, saver := newTestGame(t, 5)
	board := game.Scoreboard()

	before := saver.saves
	if err := board.RecordScore(domain.ScoreEntry{Name: "Kon", Score: 2, Total: 5, Mode: "short"}); err != nil {
		t.Fatalf("record score: %v", err)
	}
	if saver.saves != before+1 {
		t.Fatalf("expected exactly one save per score, got %d", saver.saves-before)
	}
}
