package wordle

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

// State is a step of the interactive round.
type State int

const (
	AwaitGuess State = iota
	AwaitCorrectPositions
	AwaitPresentPositions
	Applied
)

func (st State) String() string {
	switch st {
	case AwaitGuess:
		return "await-guess"
	case AwaitCorrectPositions:
		return "await-correct"
	case AwaitPresentPositions:
		return "await-present"
	case Applied:
		return "applied"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Session drives one store and its working dictionary through line-oriented input.
//
// Each round reads a guess, then the green (Correct) positions, then the yellow (Present)
// positions; an empty line closes each position round. Positions never mentioned are Absent.
// Session does no I/O of its own, so it can be fed canned input.
type Session struct {
	store *Store
	dict  *primitives.WordSet
	log   *slog.Logger

	state State
	guess []rune
	marks Feedback

	rounds     int
	outcome    Outcome
	candidates []string
}

type SessionOption func(*Session)

// WithLogger makes the session log each applied round.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSession(store *Store, dict *primitives.WordSet, opts ...SessionOption) *Session {
	s := &Session{
		store: store,
		dict:  dict,
		log:   slog.New(slog.DiscardHandler),
		state: AwaitGuess,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Store() *Store { return s.store }
func (s *Session) Dictionary() *primitives.WordSet { return s.dict }
func (s *Session) Rounds() int { return s.rounds }

// Guess returns the guess of the round in progress, or the last applied one.
func (s *Session) Guess() string { return string(s.guess) }

// Outcome returns the result of the most recently applied round.
func (s *Session) Outcome() Outcome { return s.outcome }

// Candidates returns the words left after the most recently applied round.
func (s *Session) Candidates() []string { return slices.Clone(s.candidates) }

// Prompt returns the question matching the current state.
func (s *Session) Prompt() string {
	switch s.state {
	case AwaitCorrectPositions:
		return fmt.Sprintf("Green letter positions %v? Enter to continue: ", s.store.OpenPositions())
	case AwaitPresentPositions:
		return fmt.Sprintf("Yellow letter positions %v? Enter to continue: ", s.unmarked())
	default:
		return "Which word did you guess?: "
	}
}

// unmarked lists the 1-based positions that are neither resolved nor marked this round.
func (s *Session) unmarked() []int {
	var out []int
	for i, m := range s.marks {
		if m != Absent {
			continue
		}
		if _, ok := s.store.Resolved(i); ok {
			continue
		}
		out = append(out, i+1)
	}
	return out
}

// Submit feeds one line of input. A rejected line leaves the state unchanged so the caller
// can re-prompt. ErrSessionEnded and ErrSessionComplete end the session. If the finished
// round cannot be applied, the round is dropped and the session waits for a new guess.
func (s *Session) Submit(line string) error {
	line = strings.TrimSpace(line)
	switch s.state {
	case AwaitCorrectPositions:
		if line == "" {
			if s.marks.Solved() {
				return s.apply()
			}
			s.state = AwaitPresentPositions
			return nil
		}
		return s.mark(line, Correct)
	case AwaitPresentPositions:
		if line == "" {
			return s.apply()
		}
		return s.mark(line, Present)
	default:
		return s.submitGuess(line)
	}
}

func (s *Session) submitGuess(line string) error {
	if line == "" {
		return ErrSessionEnded
	}
	if s.store.Complete() {
		return ErrSessionComplete
	}
	guess := []rune(primitives.NormalizeWord(line))
	if len(guess) != s.store.Width() {
		return fmt.Errorf("word must be %d letters long: %w", s.store.Width(), ErrInvalidLength)
	}
	if !s.dict.Contains(string(guess)) {
		return fmt.Errorf("%q: %w", string(guess), ErrUnknownGuess)
	}

	s.guess = guess
	s.marks = make(Feedback, len(guess))
	for i, r := range guess {
		if resolved, ok := s.store.Resolved(i); ok && resolved == r {
			s.marks[i] = Correct
		}
	}
	s.state = AwaitCorrectPositions
	return nil
}

// mark records every position on the line as m, or none of them if any is rejected.
func (s *Session) mark(line string, m Mark) error {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	tentative := slices.Clone(s.marks)
	for _, f := range fields {
		p, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("%q is not a number: %w", f, ErrInvalidPosition)
		}
		if p < 1 || p > s.store.Width() {
			return fmt.Errorf("the number %d is out of range 1-%d: %w", p, s.store.Width(), ErrInvalidPosition)
		}
		i := p - 1
		r := s.guess[i]
		if resolved, ok := s.store.Resolved(i); ok && resolved == r {
			continue
		}
		if m == Present && tentative[i] == Correct {
			return &ContradictionError{Position: p, Letter: r, Reason: "already marked green this round"}
		}
		tentative[i] = m
	}
	if _, err := s.store.check(s.guess, tentative); err != nil {
		return err
	}
	s.marks = tentative
	return nil
}

func (s *Session) apply() error {
	_, err := s.Round(string(s.guess), s.marks)
	if err != nil {
		s.state = AwaitGuess
	}
	return err
}

// Round applies a complete guess and its feedback in one step, then narrows the
// working dictionary. It is the non-interactive counterpart of Submit.
func (s *Session) Round(guess string, fb Feedback) (Outcome, error) {
	out, err := s.store.Apply(s.dict, guess, fb)
	if err != nil {
		return Outcome{}, err
	}
	dropped := Narrow(s.dict, s.store)

	s.rounds++
	s.guess = []rune(out.Guess)
	s.marks = out.Feedback
	s.outcome = out
	s.candidates = s.dict.Words()
	s.state = Applied

	s.log.Debug("applied guess",
		"round", s.rounds,
		"guess", out.Guess,
		"feedback", out.Feedback.String(),
		"pattern", s.store.Pattern(),
		"removed", string(out.Removed),
		"dropped", dropped,
		"candidates", len(s.candidates),
	)
	return out, nil
}
