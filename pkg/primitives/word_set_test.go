package primitives

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewWordSet_Normalizes(t *testing.T) {
	ws := NewWordSet([]string{"Crane\n", "slate\r\n", "  TRACE ", "ab", "toolong", "crane", ""}, 5)

	want := []string{"crane", "slate", "trace"}
	if diff := cmp.Diff(want, ws.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
	if ws.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ws.Len())
	}
	if ws.NumLetters() != 5 {
		t.Errorf("NumLetters() = %d, want 5", ws.NumLetters())
	}
}

func TestWordSet_ContainsAndRemove(t *testing.T) {
	ws := NewWordSet([]string{"crane", "slate"}, 5)

	if !ws.Contains("CRANE") {
		t.Error("Contains(CRANE) = false, want true")
	}
	if !ws.Remove("crane") {
		t.Error("Remove(crane) = false, want true")
	}
	if ws.Remove("crane") {
		t.Error("second Remove(crane) = true, want false")
	}
	if ws.Remove("zzzzz") {
		t.Error("Remove(zzzzz) = true, want false")
	}
	if ws.Contains("crane") {
		t.Error("Contains(crane) after Remove = true")
	}
	if ws.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ws.Len())
	}
}

func TestWordSet_Retain(t *testing.T) {
	ws := NewWordSet([]string{"crane", "slate", "trace", "brick"}, 5)

	dropped := ws.Retain(func(w string) bool { return strings.ContainsRune(w, 'a') })
	if dropped != 1 {
		t.Errorf("Retain() dropped %d, want 1", dropped)
	}
	if diff := cmp.Diff([]string{"crane", "slate", "trace"}, ws.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

func TestWordSet_CloneIsIndependent(t *testing.T) {
	ws := NewWordSet([]string{"crane", "slate"}, 5)
	cl := ws.Clone()
	cl.Remove("crane")

	if !ws.Contains("crane") {
		t.Error("removing from clone changed original")
	}
	if cl.Len() != 1 {
		t.Errorf("clone Len() = %d, want 1", cl.Len())
	}
}

func allowedAll(n int, letters string) []*CharSet {
	out := make([]*CharSet, n)
	for i := range out {
		out[i] = CharSetOf(letters)
	}
	return out
}

func TestWordSet_Select(t *testing.T) {
	words := []string{"crane", "slate", "trace", "brick", "react", "cater"}
	const abc = "abcdefghijklmnopqrstuvwxyz"

	tests := []struct {
		name     string
		allowed  func() []*CharSet
		required []rune
		want     []string
	}{
		{
			name:    "unconstrained",
			allowed: func() []*CharSet { return allowedAll(5, abc) },
			want:    []string{"brick", "cater", "crane", "react", "slate", "trace"},
		},
		{
			name: "third letter fixed",
			allowed: func() []*CharSet {
				a := allowedAll(5, abc)
				a[2] = CharSetOf("a")
				return a
			},
			want: []string{"crane", "react", "slate", "trace"},
		},
		{
			name:     "required letter",
			allowed:  func() []*CharSet { return allowedAll(5, abc) },
			required: []rune{'s'},
			want:     []string{"slate"},
		},
		{
			name: "excluded at position",
			allowed: func() []*CharSet {
				a := allowedAll(5, abc)
				a[0] = a[0].Without(CharSetOf("c"))
				return a
			},
			required: []rune{'c'},
			want:     []string{"brick", "react", "trace"},
		},
		{
			name:     "required letter nowhere in dictionary",
			allowed:  func() []*CharSet { return allowedAll(5, abc) },
			required: []rune{'z'},
			want:     []string{},
		},
		{
			name: "empty slot set",
			allowed: func() []*CharSet {
				a := allowedAll(5, abc)
				a[4] = NewCharSet('a', 'z')
				return a
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWordSet(words, 5)
			got := ws.Select(tt.allowed(), tt.required)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
			if ws.Len() != len(words) {
				t.Errorf("Select() mutated set, Len() = %d", ws.Len())
			}
		})
	}
}

func TestWordSet_SelectSkipsRemoved(t *testing.T) {
	ws := NewWordSet([]string{"crane", "slate", "trace"}, 5)
	ws.Remove("slate")
	got := ws.Select(allowedAll(5, "abcdefghijklmnopqrstuvwxyz"), []rune{'a'})
	if diff := cmp.Diff([]string{"crane", "trace"}, got); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}
}

func TestWordSet_Restrict(t *testing.T) {
	ws := NewWordSet([]string{"crane", "slate", "trace", "brick"}, 5)
	allowed := allowedAll(5, "abcdefghijklmnopqrstuvwxyz")

	if dropped := ws.Restrict(allowed, []rune{'e'}); dropped != 1 {
		t.Errorf("Restrict() dropped %d, want 1", dropped)
	}
	if dropped := ws.Restrict(allowed, []rune{'e'}); dropped != 0 {
		t.Errorf("second Restrict() dropped %d, want 0", dropped)
	}
	if !slices.Equal(ws.Words(), []string{"crane", "slate", "trace"}) {
		t.Errorf("Words() = %v", ws.Words())
	}
}

func TestWordSet_SelectWrongArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Select() did not panic for wrong number of positions")
		}
	}()
	NewWordSet([]string{"crane"}, 5).Select(allowedAll(4, "abc"), nil)
}
