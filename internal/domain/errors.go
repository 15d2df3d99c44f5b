package domain

import "errors"

var (
	// ErrQuestionOutOfRange is returned when a question ID falls outside 1..count.
	ErrQuestionOutOfRange = errors.New("question id out of range")
	// ErrAnswerNotFound is returned when the answer key has no entry for a question.
	ErrAnswerNotFound = errors.New("answer not found for question")
	// ErrDataIntegrity indicates the question and answer files disagree with each other.
	ErrDataIntegrity = errors.New("question data integrity error")
	// ErrUnknownMode indicates a game-mode key that is not configured.
	ErrUnknownMode = errors.New("unknown game mode")
	// ErrNotEnoughQuestions is returned when a mode needs more questions than exist.
	ErrNotEnoughQuestions = errors.New("not enough unique questions for this mode")
	// ErrRoundState is returned when a round operation is called out of order.
	ErrRoundState = errors.New("round is not in a valid state for this operation")
)
