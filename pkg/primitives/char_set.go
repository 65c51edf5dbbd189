package primitives

import (
	"fmt"
	"strings"
)

// CharSet efficiently represents a set of letters drawn from a contiguous rune range.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	if max < min {
		max = min
	}
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// FullCharSet returns a set holding every character from min to max.
func FullCharSet(min, max rune) *CharSet {
	c := NewCharSet(min, max)
	for i := range c.available {
		c.available[i] = true
	}
	c.count = len(c.available)
	return c
}

// DefaultAlphabet holds the lowercase ASCII letters a to z.
func DefaultAlphabet() *CharSet {
	return FullCharSet('a', 'z')
}

// CharSetOf returns a set sized to hold exactly the range spanned by letters, containing all of them.
// An empty string yields an empty a to z set.
func CharSetOf(letters string) *CharSet {
	if letters == "" {
		return NewCharSet('a', 'z')
	}
	lo, hi := rune(-1), rune(-1)
	for _, r := range letters {
		if lo == -1 || r < lo {
			lo = r
		}
		if hi == -1 || r > hi {
			hi = r
		}
	}
	c := NewCharSet(lo, hi)
	for _, r := range letters {
		_ = c.Add(r)
	}
	return c
}

// Empty returns an empty set with the same range as c.
func (c *CharSet) Empty() *CharSet {
	return &CharSet{
		available: make([]bool, len(c.available)),
		min:       c.min,
	}
}

// Clone returns an independent copy of c.
func (c *CharSet) Clone() *CharSet {
	out := c.Empty()
	copy(out.available, c.available)
	out.count = c.count
	return out
}

func (c *CharSet) inRange(r rune) bool {
	return r >= c.min && r <= c.min+rune(len(c.available)-1)
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.inRange(r) {
		return fmt.Errorf("character %c is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// Remove removes a character from the set. It reports whether the set changed.
func (c *CharSet) Remove(r rune) bool {
	if !c.inRange(r) || !c.available[r-c.min] {
		return false
	}
	c.available[r-c.min] = false
	c.count--
	return true
}

func (c *CharSet) sameRange(other *CharSet) bool {
	return c.min == other.min && len(c.available) == len(other.available)
}

// AddAll adds every character of other to c. Characters outside c's range are skipped.
func (c *CharSet) AddAll(other *CharSet) {
	if !c.sameRange(other) {
		for _, r := range other.Runes() {
			_ = c.Add(r)
		}
		return
	}
	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Without returns a new set holding the characters of c that are not in other.
// The two sets may cover different ranges.
func (c *CharSet) Without(other *CharSet) *CharSet {
	out := c.Clone()
	if other.count == 0 {
		return out
	}
	if !c.sameRange(other) {
		for _, r := range other.Runes() {
			out.Remove(r)
		}
		return out
	}
	for oi, oa := range other.available {
		if oa && out.available[oi] {
			out.available[oi] = false
			out.count--
		}
	}
	return out
}

// Contains checks if a character is in the set. Characters outside the set's range are never contained.
func (c *CharSet) Contains(r rune) bool {
	return c.inRange(r) && c.available[r-c.min]
}

// IsEmpty checks if the set has no characters.
func (c *CharSet) IsEmpty() bool {
	return c.count == 0
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// Runes returns the characters in the set in ascending order.
func (c *CharSet) Runes() []rune {
	out := make([]rune, 0, c.count)
	for i, ok := range c.available {
		if ok {
			out = append(out, c.min+rune(i))
		}
	}
	return out
}

// String renders the set as "{a, e, r}".
func (c *CharSet) String() string {
	parts := make([]string, 0, c.count)
	for _, r := range c.Runes() {
		parts = append(parts, string(r))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
