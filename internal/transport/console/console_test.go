package console

import (
	"strings"
	"testing"

	"bleach-trivia/internal/domain"
)

func TestPromptNameRejectsInvalidInput(t *testing.T) {
	in := strings.NewReader("this name is far far too long to accept\nKurosaki!\nIchigo Kurosaki\n")
	var out strings.Builder
	c := New(in, &out)

	name, err := c.PromptName(20)
	if err != nil {
		t.Fatalf("prompt name: %v", err)
	}
	if name != "Ichigo Kurosaki" {
		t.Fatalf("expected third input accepted, got %q", name)
	}
	if !strings.Contains(out.String(), "Name must be 1-20 characters") {
		t.Fatalf("expected validation message, got:\n%s", out.String())
	}
}

func TestPromptAnswerLoopsUntilValidLabel(t *testing.T) {
	in := strings.NewReader("E\n\nb\n")
	var out strings.Builder
	c := New(in, &out)

	answer, err := c.PromptAnswer([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("prompt answer: %v", err)
	}
	if answer != "B" {
		t.Fatalf("expected uppercased B, got %q", answer)
	}
}

func TestShowMenuValidatesChoice(t *testing.T) {
	in := strings.NewReader("7\nabc\n2\n")
	var out strings.Builder
	c := New(in, &out)

	choice, err := c.ShowMenu("Main Menu", []string{"Play Game", "View Leaderboards", "Exit"})
	if err != nil {
		t.Fatalf("show menu: %v", err)
	}
	if choice != 2 {
		t.Fatalf("expected choice 2, got %d", choice)
	}
	if !strings.Contains(out.String(), "1. Play Game") {
		t.Fatalf("expected rendered menu, got:\n%s", out.String())
	}
}

func TestPromptPropagatesClosedInput(t *testing.T) {
	c := New(strings.NewReader(""), &strings.Builder{})
	if _, err := c.PromptName(20); err == nil {
		t.Fatalf("expected error when input is closed")
	}
}

func TestShowLeaderboardsRendersTables(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)

	board := domain.NewLeaderboard([]string{"short"})
	board.TopScores = []domain.ScoreEntry{
		{Name: "Yoruichi", Score: 4, Total: 5, Mode: "short", Date: "2025-06-01 12:00"},
	}
	board.Modes["short"] = board.TopScores

	c.ShowLeaderboards(board, []domain.GameMode{{Key: "short", Name: "Short Game", Questions: 5}})

	text := out.String()
	if !strings.Contains(text, "Yoruichi") {
		t.Fatalf("expected player name rendered, got:\n%s", text)
	}
	if !strings.Contains(text, "80.0%") {
		t.Fatalf("expected percentage rendered, got:\n%s", text)
	}
	if !strings.Contains(text, "SHORT MODE") {
		t.Fatalf("expected mode section rendered, got:\n%s", text)
	}
}

func TestShowLeaderboardsEmptyBoard(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)

	c.ShowLeaderboards(domain.NewLeaderboard([]string{"short"}), []domain.GameMode{{Key: "short", Name: "Short Game"}})
	if !strings.Contains(out.String(), "No top scores yet") {
		t.Fatalf("expected empty-board message, got:\n%s", out.String())
	}
}

func TestShowQuestionOrdersOptionsByLabel(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)

	q := domain.Question{
		ID:   1,
		Text: "Who leads Squad 6?",
		Options: map[string]string{
			"D": "Kenpachi", "B": "Byakuya", "A": "Renji", "C": "Ukitake",
		},
	}
	c.ShowQuestion(1, 5, q)

	text := out.String()
	iA, iB := strings.Index(text, "A. "), strings.Index(text, "B. ")
	iC, iD := strings.Index(text, "C. "), strings.Index(text, "D. ")
	if !(iA < iB && iB < iC && iC < iD) {
		t.Fatalf("expected options in label order, got:\n%s", text)
	}
}
