package wordle

import (
	"fmt"
	"strings"
)

// Unknown is how an unresolved slot is rendered.
const Unknown = '?'

// SlotString renders a slot array as "[?, ?, a, ?, e]".
func SlotString(slots []rune) string {
	parts := make([]string, len(slots))
	for i, r := range slots {
		if r == 0 {
			r = Unknown
		}
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pattern renders the slot array compactly, e.g. "??a?e".
func (s *Store) Pattern() string {
	var b strings.Builder
	for _, r := range s.slots {
		if r == 0 {
			r = Unknown
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) String() string {
	return SlotString(s.slots)
}

func (s *Store) DebugString() string {
	excl := make([]string, s.width)
	for i, e := range s.exclusions {
		excl[i] = e.String()
	}
	return fmt.Sprintf("Store{width: %d, slots: %s, required: %v, alphabet: %v, exclusions: [%s]}",
		s.width, SlotString(s.slots), s.required, s.alphabet, strings.Join(excl, " "))
}
