package app

import (
	"fmt"
	"strconv"

	"bleach-trivia/internal/domain"
)

// QuestionStore holds the immutable question list and answer key for the
// lifetime of the process. Construction validates that the two sources agree,
// so per-question lookups after startup cannot hit a missing answer.
type QuestionStore struct {
	questions []domain.Question
	answers   map[string]string
}

// NewQuestionStore validates the loaded question data and answer key against
// each other and fails fast on any mismatch.
func NewQuestionStore(questions []domain.Question, answers map[string]string) (*QuestionStore, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions loaded", domain.ErrDataIntegrity)
	}
	for i, q := range questions {
		id := i + 1
		if q.ID != id {
			return nil, fmt.Errorf("%w: question %d has id %d", domain.ErrDataIntegrity, id, q.ID)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %d has no options", domain.ErrDataIntegrity, id)
		}
		label, ok := answers[strconv.Itoa(id)]
		if !ok {
			return nil, fmt.Errorf("%w: no answer for question %d", domain.ErrDataIntegrity, id)
		}
		if _, ok := q.Options[label]; !ok {
			return nil, fmt.Errorf("%w: answer %q for question %d is not an option", domain.ErrDataIntegrity, label, id)
		}
	}
	return &QuestionStore{questions: questions, answers: answers}, nil
}

// Count returns the total number of questions.
func (s *QuestionStore) Count() int {
	return len(s.questions)
}

// Question returns the question with the given 1-based ID.
func (s *QuestionStore) Question(id int) (domain.Question, error) {
	if id < 1 || id > len(s.questions) {
		return domain.Question{}, fmt.Errorf("%w: %d (valid range 1..%d)", domain.ErrQuestionOutOfRange, id, len(s.questions))
	}
	return s.questions[id-1], nil
}

// CorrectAnswer returns the correct option label for a question ID.
func (s *QuestionStore) CorrectAnswer(id int) (string, error) {
	label, ok := s.answers[strconv.Itoa(id)]
	if !ok {
		return "", fmt.Errorf("%w: question %d", domain.ErrAnswerNotFound, id)
	}
	return label, nil
}
