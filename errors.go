package wordle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for guesses or feedback whose length is not the word length.
	ErrInvalidLength = errors.New("wrong length")
	// ErrInvalidPosition is returned for position input that is not a number in [1, word length].
	ErrInvalidPosition = errors.New("invalid position")
	// ErrUnknownGuess is returned when the guess is not in the working dictionary.
	ErrUnknownGuess = errors.New("word not in possibilities")
	// ErrContradictoryFeedback is the sentinel matched by every *ContradictionError.
	ErrContradictoryFeedback = errors.New("contradictory feedback")
	// ErrSessionComplete is returned once every slot is resolved.
	ErrSessionComplete = errors.New("all letters resolved")
	// ErrSessionEnded is returned when the user submits an empty guess.
	ErrSessionEnded = errors.New("session ended")
)

// ContradictionError describes feedback that conflicts with what the store already knows.
// Position is 1-based.
type ContradictionError struct {
	Position int
	Letter   rune
	Reason   string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("position %d (%c): %s", e.Position, e.Letter, e.Reason)
}

func (e *ContradictionError) Is(target error) bool {
	return target == ErrContradictoryFeedback
}
