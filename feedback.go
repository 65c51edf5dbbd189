package wordle

import (
	"fmt"
	"strings"
)

// Mark classifies one position of a guess.
type Mark int8

const (
	// Absent: the guessed letter is not in the answer (or not again, for repeated letters).
	Absent Mark = iota
	// Present: the guessed letter is in the answer but at another position.
	Present
	// Correct: the guessed letter is at this position in the answer.
	Correct
)

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

func (m Mark) symbol() byte {
	switch m {
	case Correct:
		return 'g'
	case Present:
		return 'y'
	default:
		return '.'
	}
}

// Feedback holds one Mark per position of a guess.
type Feedback []Mark

// ParseFeedback reads compact feedback such as "..g.g" or "xygxg".
//
//	g G 2     Correct
//	y Y 1     Present
//	. x b - 0 Absent
func ParseFeedback(s string) (Feedback, error) {
	fb := make(Feedback, 0, len(s))
	for i, r := range s {
		switch r {
		case 'g', 'G', '2':
			fb = append(fb, Correct)
		case 'y', 'Y', '1':
			fb = append(fb, Present)
		case '.', 'x', 'X', 'b', 'B', '-', '0':
			fb = append(fb, Absent)
		default:
			return nil, fmt.Errorf("feedback %q: unexpected %q at offset %d", s, r, i)
		}
	}
	return fb, nil
}

func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		b.WriteByte(m.symbol())
	}
	return b.String()
}

// Solved reports whether every position is Correct.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != Correct {
			return false
		}
	}
	return len(f) > 0
}

// Score returns the feedback the game gives for guess when the answer is answer.
// Repeated letters are marked Present only as many times as the answer has unmatched copies.
func Score(guess, answer string) (Feedback, error) {
	g, a := []rune(guess), []rune(answer)
	if len(g) != len(a) {
		return nil, fmt.Errorf("score %q against %q: %w", guess, answer, ErrInvalidLength)
	}

	fb := make(Feedback, len(g))
	unmatched := make(map[rune]int, len(a))
	for i := range g {
		if g[i] == a[i] {
			fb[i] = Correct
			continue
		}
		unmatched[a[i]]++
	}
	for i := range g {
		if fb[i] == Correct {
			continue
		}
		if unmatched[g[i]] > 0 {
			fb[i] = Present
			unmatched[g[i]]--
		}
	}
	return fb, nil
}
