package wordle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	store, dict := newFixture(t)
	return NewSession(store, dict)
}

// feed submits lines in order and fails on the first unexpected error.
func feed(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := s.Submit(line); err != nil {
			t.Fatalf("Submit(%q) in %v error = %v", line, s.State(), err)
		}
	}
}

func TestSession_ScenarioA(t *testing.T) {
	s := newSession(t)

	if s.State() != AwaitGuess {
		t.Fatalf("State() = %v, want AwaitGuess", s.State())
	}
	feed(t, s, "crane")
	if s.State() != AwaitCorrectPositions {
		t.Fatalf("State() = %v, want AwaitCorrectPositions", s.State())
	}
	feed(t, s, "3", "5", "")
	if s.State() != AwaitPresentPositions {
		t.Fatalf("State() = %v, want AwaitPresentPositions", s.State())
	}
	if got, want := s.Prompt(), "Yellow letter positions [1 2 4]? Enter to continue: "; got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
	feed(t, s, "2", "")
	if s.State() != Applied {
		t.Fatalf("State() = %v, want Applied", s.State())
	}

	if got := s.Store().String(); got != "[?, ?, a, ?, e]" {
		t.Errorf("slots = %s", got)
	}
	if got := s.Outcome().Feedback.String(); got != ".yg.g" {
		t.Errorf("feedback = %s, want .yg.g", got)
	}
	want := []string{"aware", "blare", "flare", "share", "spare", "stare"}
	if diff := cmp.Diff(want, s.Candidates()); diff != "" {
		t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
	}
	if s.Dictionary().Len() != len(want) {
		t.Errorf("working dictionary has %d words, want %d", s.Dictionary().Len(), len(want))
	}
	if s.Rounds() != 1 {
		t.Errorf("Rounds() = %d, want 1", s.Rounds())
	}
}

func TestSession_GreenPromptListsOpenPositions(t *testing.T) {
	s := newSession(t)
	feed(t, s, "crane")
	if got, want := s.Prompt(), "Green letter positions [1 2 3 4 5]? Enter to continue: "; got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
	feed(t, s, "3 5", "", "2", "")

	feed(t, s, "share")
	if got, want := s.Prompt(), "Green letter positions [1 2 4]? Enter to continue: "; got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
}

func TestSession_FailedApplyDropsRound(t *testing.T) {
	s := newSession(t)
	feed(t, s, "crane", "3", "")
	// The guess disappears from the dictionary before the round is applied.
	s.Dictionary().Remove("crane")

	if err := s.Submit(""); !errors.Is(err, ErrUnknownGuess) {
		t.Fatalf("Submit() error = %v, want ErrUnknownGuess", err)
	}
	if s.State() != AwaitGuess {
		t.Errorf("State() = %v, want AwaitGuess", s.State())
	}
	if s.Rounds() != 0 {
		t.Errorf("Rounds() = %d, want 0", s.Rounds())
	}
	if _, ok := s.Store().Resolved(2); ok {
		t.Error("dropped round resolved a slot")
	}
}

func TestSession_SeveralPositionsPerLine(t *testing.T) {
	s := newSession(t)
	feed(t, s, "crane", "3, 5", "", "2", "")
	if got := s.Store().Pattern(); got != "??a?e" {
		t.Errorf("Pattern() = %q, want ??a?e", got)
	}
}

func TestSession_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		before  []string
		line    string
		wantErr error
		state   State
	}{
		{"empty guess ends session", nil, "", ErrSessionEnded, AwaitGuess},
		{"short guess", nil, "cran", ErrInvalidLength, AwaitGuess},
		{"long guess", nil, "cranes", ErrInvalidLength, AwaitGuess},
		{"unknown guess", nil, "zzzzz", ErrUnknownGuess, AwaitGuess},
		{"non-numeric green", []string{"crane"}, "three", ErrInvalidPosition, AwaitCorrectPositions},
		{"green out of range", []string{"crane"}, "6", ErrInvalidPosition, AwaitCorrectPositions},
		{"green zero", []string{"crane"}, "0", ErrInvalidPosition, AwaitCorrectPositions},
		{"yellow out of range", []string{"crane", ""}, "9", ErrInvalidPosition, AwaitPresentPositions},
		{"yellow on green", []string{"crane", "3", ""}, "3", ErrContradictoryFeedback, AwaitPresentPositions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			feed(t, s, tt.before...)
			if err := s.Submit(tt.line); !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			if s.State() != tt.state {
				t.Errorf("State() = %v, want %v", s.State(), tt.state)
			}
		})
	}
}

func TestSession_RejectedLineMarksNothing(t *testing.T) {
	s := newSession(t)
	feed(t, s, "crane")
	if err := s.Submit("1 7"); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("Submit() error = %v, want ErrInvalidPosition", err)
	}
	feed(t, s, "", "")
	if got := s.Outcome().Feedback.String(); got != "....." {
		t.Errorf("feedback = %s, want .....", got)
	}
}

func TestSession_PresentOnSameResolvedLetter(t *testing.T) {
	s := newSession(t)
	feed(t, s, "crane", "3", "5", "", "")

	// Position 3 of spade is a, already resolved there, so marking it yellow is a no-op.
	feed(t, s, "spade", "", "3", "1", "")
	if s.State() != Applied {
		t.Fatalf("State() = %v, want Applied", s.State())
	}
	if got := s.Outcome().Feedback.String(); got != "y.g.g" {
		t.Errorf("feedback = %s, want y.g.g", got)
	}
	if s.Store().Exclusions(2).Contains('a') {
		t.Error("resolved letter excluded at its own slot")
	}
}

func TestSession_ContradictionRePrompts(t *testing.T) {
	store, dict := newFixture(t)
	if _, err := store.Apply(dict, "crane", mustFeedback(t, "..g.g")); err != nil {
		t.Fatal(err)
	}
	// dict still holds those: this session never narrowed it.
	s := NewSession(store, dict)
	feed(t, s, "those", "")

	err := s.Submit("3")
	var ce *ContradictionError
	if !errors.As(err, &ce) {
		t.Fatalf("Submit(3) error = %v, want *ContradictionError", err)
	}
	if ce.Position != 3 || ce.Letter != 'o' {
		t.Errorf("ContradictionError = %+v", ce)
	}
	if s.State() != AwaitPresentPositions {
		t.Errorf("State() = %v, want AwaitPresentPositions", s.State())
	}
	if store.Exclusions(2).Contains('o') {
		t.Error("exclusion recorded despite contradiction")
	}
}

func TestSession_Complete(t *testing.T) {
	s := newSession(t)
	feed(t, s, "share", "1 3 4 5", "", "")
	if s.Outcome().Complete {
		t.Fatal("complete after share")
	}
	feed(t, s, "stare", "2", "")
	if s.State() != Applied {
		t.Fatalf("State() = %v, want Applied (all green skips the yellow round)", s.State())
	}
	if !s.Outcome().Complete {
		t.Fatal("Outcome().Complete = false after all slots resolved")
	}
	if err := s.Submit("slate"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Submit() after completion error = %v, want ErrSessionComplete", err)
	}
}

func TestSession_Round(t *testing.T) {
	s := newSession(t)
	out, err := s.Round("crane", mustFeedback(t, ".yg.g"))
	if err != nil {
		t.Fatalf("Round() error = %v", err)
	}
	if diff := cmp.Diff([]rune{'c', 'n'}, out.Removed); diff != "" {
		t.Errorf("Removed mismatch (-want +got):\n%s", diff)
	}
	if len(s.Candidates()) != 6 {
		t.Errorf("Candidates() = %v", s.Candidates())
	}
	if _, err := s.Round("crane", mustFeedback(t, ".yg.g")); !errors.Is(err, ErrUnknownGuess) {
		t.Errorf("repeated Round() error = %v, want ErrUnknownGuess", err)
	}
}

func TestState_String(t *testing.T) {
	for st, want := range map[State]string{
		AwaitGuess:            "await-guess",
		AwaitCorrectPositions: "await-correct",
		AwaitPresentPositions: "await-present",
		Applied:               "applied",
		State(9):              "State(9)",
	} {
		if got := st.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
