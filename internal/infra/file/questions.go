package file

import (
	"encoding/json"
	"fmt"
	"os"

	"bleach-trivia/internal/domain"
)

type questionRecord struct {
	Text    string            `json:"question"`
	Options map[string]string `json:"options"`
}

// LoadQuestions reads the questions document: an ordered JSON array of
// {question, options}. IDs are assigned from position, 1-based. A missing or
// malformed file is fatal for the process; the game cannot run without it.
func LoadQuestions(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var records []questionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}

	questions := make([]domain.Question, len(records))
	for i, rec := range records {
		questions[i] = domain.Question{
			ID:      i + 1,
			Text:    rec.Text,
			Options: rec.Options,
		}
	}
	return questions, nil
}

// LoadAnswers reads the answer key: a JSON object mapping stringified 1-based
// question indices to the correct option label.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var answers map[string]string
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	return answers, nil
}
