// Package wordle tracks what guess feedback reveals about a hidden word and filters
// a dictionary down to the words still possible.
package wordle

import (
	"fmt"
	"slices"

	"crosswarped.com/wordle/pkg/primitives"
)

// Store accumulates what the feedback so far says about the answer.
//
// Every set only ever grows, except the alphabet which only ever shrinks, and a resolved
// slot never changes again. A Store is owned by one session and is not safe for concurrent use.
type Store struct {
	width int

	// slots[i] is the resolved letter at position i, or 0 while unknown.
	slots []rune

	alphabet *primitives.CharSet
	// present holds letters confirmed Present by some guess; required is present plus resolved letters.
	present    *primitives.CharSet
	required   *primitives.CharSet
	exclusions []*primitives.CharSet
}

// NewStore returns an empty store for words of width letters drawn from alphabet.
// The alphabet is copied.
func NewStore(width int, alphabet *primitives.CharSet) (*Store, error) {
	if width < 1 {
		return nil, fmt.Errorf("word length %d: %w", width, ErrInvalidLength)
	}
	if alphabet == nil {
		alphabet = primitives.DefaultAlphabet()
	}

	s := &Store{
		width:      width,
		slots:      make([]rune, width),
		alphabet:   alphabet.Clone(),
		present:    alphabet.Empty(),
		required:   alphabet.Empty(),
		exclusions: make([]*primitives.CharSet, width),
	}
	for i := range s.exclusions {
		s.exclusions[i] = alphabet.Empty()
	}
	return s, nil
}

// Width returns the word length.
func (s *Store) Width() int {
	return s.width
}

// Slots returns a copy of the slot array; 0 marks an unknown slot.
func (s *Store) Slots() []rune {
	return slices.Clone(s.slots)
}

// Resolved returns the letter at position i (0-based) and whether it is known.
// Positions outside the word report false.
func (s *Store) Resolved(i int) (rune, bool) {
	if i < 0 || i >= s.width {
		return 0, false
	}
	return s.slots[i], s.slots[i] != 0
}

// Alphabet returns a copy of the letters still possible anywhere.
func (s *Store) Alphabet() *primitives.CharSet {
	return s.alphabet.Clone()
}

// Required returns a copy of the letters known to be in the answer.
func (s *Store) Required() *primitives.CharSet {
	return s.required.Clone()
}

// Exclusions returns a copy of the letters known not to be at position i (0-based).
// Positions outside the word yield an empty set.
func (s *Store) Exclusions(i int) *primitives.CharSet {
	if i < 0 || i >= s.width {
		return s.alphabet.Empty()
	}
	return s.exclusions[i].Clone()
}

// Complete reports whether every slot is resolved.
func (s *Store) Complete() bool {
	return !slices.Contains(s.slots, 0)
}

// OpenPositions returns the 1-based positions that are still unknown.
func (s *Store) OpenPositions() []int {
	var out []int
	for i, r := range s.slots {
		if r == 0 {
			out = append(out, i+1)
		}
	}
	return out
}

// Outcome summarises what one Apply changed.
type Outcome struct {
	Guess    string
	Feedback Feedback

	// Resolved lists the 1-based positions resolved by this guess.
	Resolved []int
	// Removed lists letters dropped from the alphabet.
	Removed []rune
	// Suppressed lists letters marked absent that stay in the alphabet because they are required.
	Suppressed []rune

	Complete bool
}

// Apply records the feedback for guess and removes guess from dict.
//
// Nothing is mutated unless the whole update is accepted: a malformed guess yields
// ErrInvalidLength, a guess missing from dict ErrUnknownGuess, a finished store
// ErrSessionComplete, and feedback that conflicts with earlier knowledge a *ContradictionError.
func (s *Store) Apply(dict *primitives.WordSet, guess string, fb Feedback) (Outcome, error) {
	guess = primitives.NormalizeWord(guess)
	letters := []rune(guess)
	if len(letters) != s.width {
		return Outcome{}, fmt.Errorf("guess %q has %d letters, want %d: %w", guess, len(letters), s.width, ErrInvalidLength)
	}
	if len(fb) != s.width {
		return Outcome{}, fmt.Errorf("feedback %q has %d marks, want %d: %w", fb, len(fb), s.width, ErrInvalidLength)
	}
	if s.Complete() {
		return Outcome{}, ErrSessionComplete
	}
	if !dict.Contains(guess) {
		return Outcome{}, fmt.Errorf("%q: %w", guess, ErrUnknownGuess)
	}
	fb, err := s.check(letters, fb)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Guess: guess, Feedback: fb}

	dict.Remove(guess)

	for i, m := range fb {
		if m == Correct && s.slots[i] == 0 {
			s.slots[i] = letters[i]
			out.Resolved = append(out.Resolved, i+1)
		}
	}

	s.recomputeRequired()

	for i, m := range fb {
		if m != Present {
			continue
		}
		r := letters[i]
		_ = s.present.Add(r)
		_ = s.required.Add(r)
		_ = s.exclusions[i].Add(r)
	}

	for i, m := range fb {
		if m != Absent {
			continue
		}
		r := letters[i]
		if s.required.Contains(r) {
			// A repeated letter beyond the answer's count: it is still not at this slot.
			if s.slots[i] == 0 {
				_ = s.exclusions[i].Add(r)
			}
			if !slices.Contains(out.Suppressed, r) {
				out.Suppressed = append(out.Suppressed, r)
			}
			continue
		}
		if s.alphabet.Remove(r) {
			out.Removed = append(out.Removed, r)
		}
	}

	out.Complete = s.Complete()
	return out, nil
}

// check validates fb against the store and returns it normalised: a position already
// resolved to the guessed letter is always Correct.
func (s *Store) check(letters []rune, fb Feedback) (Feedback, error) {
	out := slices.Clone(fb)
	for i, m := range fb {
		r, resolved := letters[i], s.slots[i]
		if resolved != 0 && resolved == r {
			out[i] = Correct
			continue
		}
		switch m {
		case Correct:
			if resolved != 0 {
				return nil, &ContradictionError{Position: i + 1, Letter: r, Reason: fmt.Sprintf("already resolved to %c", resolved)}
			}
			if s.exclusions[i].Contains(r) {
				return nil, &ContradictionError{Position: i + 1, Letter: r, Reason: "earlier feedback put this letter elsewhere"}
			}
			if !s.alphabet.Contains(r) {
				return nil, &ContradictionError{Position: i + 1, Letter: r, Reason: "letter was already ruled out"}
			}
		case Present:
			if resolved != 0 {
				return nil, &ContradictionError{Position: i + 1, Letter: r, Reason: fmt.Sprintf("position is resolved to %c", resolved)}
			}
			if !s.alphabet.Contains(r) {
				return nil, &ContradictionError{Position: i + 1, Letter: r, Reason: "letter was already ruled out"}
			}
		}
	}
	return out, nil
}

// resolvedLetters returns the letters fixed at some slot.
func (s *Store) resolvedLetters() *primitives.CharSet {
	out := s.alphabet.Empty()
	for _, r := range s.slots {
		if r != 0 {
			_ = out.Add(r)
		}
	}
	return out
}

func (s *Store) recomputeRequired() {
	required := s.present.Clone()
	required.AddAll(s.resolvedLetters())
	s.required = required
}
