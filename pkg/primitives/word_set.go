package primitives

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// WordSet is a shrinking set of candidate words, all exactly NumLetters letters long.
//
// The words themselves live in an immutable universe shared between clones; a WordSet
// only tracks which of them are still live.
type WordSet struct {
	u    *wordUniverse
	live *bitset.BitSet
}

type wordUniverse struct {
	words       []string // sorted, unique
	numLetters  int
	indexByWord map[string]uint

	masksOnce sync.Once
	// atPos[pos][r] = words with rune r at position pos.
	atPos []map[rune]*bitset.BitSet
	// anywhere[r] = words containing rune r at least once.
	anywhere map[rune]*bitset.BitSet
}

// NormalizeWord trims surrounding whitespace (including line terminators) and lower-cases w.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// NewWordSet builds a WordSet from raw dictionary entries. Entries are normalized with
// NormalizeWord; those that are not exactly numLetters letters long are dropped, as are duplicates.
func NewWordSet(words []string, numLetters int) *WordSet {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = NormalizeWord(w)
		if utf8.RuneCountInString(w) != numLetters {
			continue
		}
		kept = append(kept, w)
	}
	slices.Sort(kept)
	kept = slices.Compact(kept)

	u := &wordUniverse{
		words:       kept,
		numLetters:  numLetters,
		indexByWord: make(map[string]uint, len(kept)),
	}
	for i, w := range kept {
		u.indexByWord[w] = uint(i)
	}

	live := bitset.New(uint(len(kept)))
	for i := range kept {
		live.Set(uint(i))
	}
	return &WordSet{u: u, live: live}
}

func (u *wordUniverse) ensureMasks() {
	u.masksOnce.Do(func() {
		n := uint(len(u.words))
		u.atPos = make([]map[rune]*bitset.BitSet, u.numLetters)
		for pos := range u.atPos {
			u.atPos[pos] = make(map[rune]*bitset.BitSet)
		}
		u.anywhere = make(map[rune]*bitset.BitSet)

		for wi, word := range u.words {
			idx := uint(wi)
			pos := 0
			for _, r := range word {
				m, ok := u.atPos[pos][r]
				if !ok {
					m = bitset.New(n)
					u.atPos[pos][r] = m
				}
				m.Set(idx)

				a, ok := u.anywhere[r]
				if !ok {
					a = bitset.New(n)
					u.anywhere[r] = a
				}
				a.Set(idx)
				pos++
			}
		}
	})
}

// NumLetters returns the length of every word in the set.
func (w *WordSet) NumLetters() int {
	return w.u.numLetters
}

// Len returns the number of live words.
func (w *WordSet) Len() int {
	return int(w.live.Count())
}

// Contains reports whether word (normalized) is still live.
func (w *WordSet) Contains(word string) bool {
	idx, ok := w.u.indexByWord[NormalizeWord(word)]
	return ok && w.live.Test(idx)
}

// Remove drops word from the set. It reports whether the word was live.
func (w *WordSet) Remove(word string) bool {
	idx, ok := w.u.indexByWord[NormalizeWord(word)]
	if !ok || !w.live.Test(idx) {
		return false
	}
	w.live.Clear(idx)
	return true
}

// Retain keeps only the live words for which keep returns true and returns how many were dropped.
func (w *WordSet) Retain(keep func(string) bool) int {
	dropped := 0
	for i, ok := w.live.NextSet(0); ok; i, ok = w.live.NextSet(i + 1) {
		if !keep(w.u.words[i]) {
			w.live.Clear(i)
			dropped++
		}
	}
	return dropped
}

// All returns a sequence of the live words in ascending order.
func (w *WordSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, ok := w.live.NextSet(0); ok; i, ok = w.live.NextSet(i + 1) {
			if !yield(w.u.words[i]) {
				return
			}
		}
	}
}

// Words returns the live words in ascending order.
func (w *WordSet) Words() []string {
	out := make([]string, 0, w.Len())
	for word := range w.All() {
		out = append(out, word)
	}
	return out
}

// Clone returns a WordSet sharing the universe but with independent liveness.
func (w *WordSet) Clone() *WordSet {
	return &WordSet{u: w.u, live: w.live.Clone()}
}

// match returns the live words whose letter at position i is in allowed[i] and that
// contain every rune of required.
func (w *WordSet) match(allowed []*CharSet, required []rune) *bitset.BitSet {
	if len(allowed) != w.u.numLetters {
		panic(fmt.Sprintf("cannot match: %d position constraints for %d-letter words", len(allowed), w.u.numLetters))
	}
	w.u.ensureMasks()

	n := uint(len(w.u.words))
	result := w.live.Clone()
	for pos, set := range allowed {
		if result.None() {
			return result
		}
		if set.IsEmpty() {
			return bitset.New(n)
		}
		slot := bitset.New(n)
		for _, r := range set.Runes() {
			if m, ok := w.u.atPos[pos][r]; ok {
				slot.InPlaceUnion(m)
			}
		}
		result.InPlaceIntersection(slot)
	}
	for _, r := range required {
		m, ok := w.u.anywhere[r]
		if !ok {
			return bitset.New(n)
		}
		result.InPlaceIntersection(m)
	}
	return result
}

// Select returns, in ascending order, the live words that satisfy the per-position allowed sets
// and contain every required rune. The set itself is not modified.
func (w *WordSet) Select(allowed []*CharSet, required []rune) []string {
	m := w.match(allowed, required)
	out := make([]string, 0, m.Count())
	for i, ok := m.NextSet(0); ok; i, ok = m.NextSet(i + 1) {
		out = append(out, w.u.words[i])
	}
	return out
}

// Restrict drops every live word that Select would not return and reports how many were dropped.
func (w *WordSet) Restrict(allowed []*CharSet, required []rune) int {
	before := w.live.Count()
	w.live = w.match(allowed, required)
	return int(before - w.live.Count())
}

func (w *WordSet) String() string {
	return fmt.Sprintf("WordSet{letters: %d, live: %d of %d}", w.u.numLetters, w.Len(), len(w.u.words))
}
