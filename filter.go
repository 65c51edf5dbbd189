package wordle

import (
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

// AllowedAt returns the letters that may occupy position i (0-based): the resolved letter,
// or the alphabet minus the letters excluded at i. Positions outside the word allow nothing.
func (s *Store) AllowedAt(i int) *primitives.CharSet {
	if i < 0 || i >= s.width {
		return s.alphabet.Empty()
	}
	if r := s.slots[i]; r != 0 {
		set := s.alphabet.Empty()
		_ = set.Add(r)
		return set
	}
	return s.alphabet.Without(s.exclusions[i])
}

func (s *Store) allowed() []*primitives.CharSet {
	out := make([]*primitives.CharSet, s.width)
	for i := range out {
		out[i] = s.AllowedAt(i)
	}
	return out
}

// consistent is false when a required letter has been dropped from the alphabet.
func (s *Store) consistent() bool {
	for _, r := range s.required.Runes() {
		if !s.alphabet.Contains(r) {
			return false
		}
	}
	return true
}

// Matches reports whether word is consistent with everything the store knows.
func (s *Store) Matches(word string) bool {
	word = primitives.NormalizeWord(word)
	letters := []rune(word)
	if len(letters) != s.width {
		return false
	}
	for i, r := range letters {
		if resolved := s.slots[i]; resolved != 0 {
			if r != resolved {
				return false
			}
			continue
		}
		if !s.alphabet.Contains(r) || s.exclusions[i].Contains(r) {
			return false
		}
	}
	for _, r := range s.required.Runes() {
		if !s.alphabet.Contains(r) || !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Filter returns, in ascending order, the words of dict consistent with s. dict is not modified.
func Filter(dict *primitives.WordSet, s *Store) []string {
	if dict.NumLetters() != s.width || !s.consistent() {
		return []string{}
	}
	return dict.Select(s.allowed(), s.required.Runes())
}

// Narrow drops from dict every word inconsistent with s and returns how many were dropped.
func Narrow(dict *primitives.WordSet, s *Store) int {
	if dict.NumLetters() != s.width || !s.consistent() {
		return dict.Retain(func(string) bool { return false })
	}
	return dict.Restrict(s.allowed(), s.required.Runes())
}
