package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	wordle "crosswarped.com/wordle"
	"crosswarped.com/wordle/pkg/primitives"
)

// display renders store state, in colour when writing to a terminal.
type display struct {
	w     io.Writer
	color colorstring.Colorize
}

func newDisplay(w io.Writer) display {
	return display{
		w: w,
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !isTerminal(w),
			Reset:   true,
		},
	}
}

func (d display) paint(code string, r rune) string {
	if d.color.Disable {
		return string(r)
	}
	return d.color.Color("[" + code + "]" + string(r))
}

// slots renders like wordle.SlotString, with resolved letters in green.
func (d display) slots(s *wordle.Store) string {
	parts := make([]string, s.Width())
	for i := range parts {
		if r, ok := s.Resolved(i); ok {
			parts[i] = d.paint("green", r)
		} else {
			parts[i] = string(wordle.Unknown)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d display) letters(set *primitives.CharSet, code string) string {
	runes := set.Runes()
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = d.paint(code, r)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d display) store(s *wordle.Store) {
	fmt.Fprintf(d.w, "Slots: %s\n", d.slots(s))
	fmt.Fprintf(d.w, "Required letters: %s\n", d.letters(s.Required(), "yellow"))
	fmt.Fprintf(d.w, "Possible letters: %s\n", d.letters(s.Alphabet(), "default"))
}

func (d display) outcome(out wordle.Outcome) {
	if len(out.Removed) > 0 {
		fmt.Fprintf(d.w, "Ruled out: %s\n", string(out.Removed))
	}
	if len(out.Suppressed) > 0 {
		fmt.Fprintf(d.w, "Kept (required elsewhere): %s\n", string(out.Suppressed))
	}
}
