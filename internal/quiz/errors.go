package quiz

import "errors"

var (
	ErrEmptyAnswers    = errors.New("answers must not be empty")
	ErrBadAgentPayload = errors.New("quiz agent returned an unexpected payload")
)
