package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	wordle "crosswarped.com/wordle"
)

type guessFlag struct {
	word string
	fb   wordle.Feedback
}

// parseGuess reads "crane=.yg.g".
func parseGuess(s string) (guessFlag, error) {
	word, marks, ok := strings.Cut(s, "=")
	if !ok || word == "" {
		return guessFlag{}, fmt.Errorf("guess %q: want word=feedback, e.g. crane=.yg.g", s)
	}
	fb, err := wordle.ParseFeedback(marks)
	if err != nil {
		return guessFlag{}, fmt.Errorf("guess %q: %w", s, err)
	}
	return guessFlag{word: word, fb: fb}, nil
}

func filterCmd(a *app) *cobra.Command {
	var guesses []string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Apply guesses given as flags and list the words still possible",
		Example: `  wordle filter --guess crane=.yg.g --guess spilt=g...y
  feedback: g = right letter and place, y = right letter elsewhere, . = not in the word`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]guessFlag, len(guesses))
			for i, g := range guesses {
				var err error
				if parsed[i], err = parseGuess(g); err != nil {
					return err
				}
			}

			alphabet, err := a.loadAlphabet()
			if err != nil {
				return err
			}
			store, err := wordle.NewStore(a.cfg.WordLength, alphabet)
			if err != nil {
				return err
			}
			s := wordle.NewSession(store, a.loadDictionary(cmd.Context()), wordle.WithLogger(a.log))
			for _, g := range parsed {
				if _, err := s.Round(g.word, g.fb); err != nil {
					return fmt.Errorf("%s=%s: %w", g.word, g.fb, err)
				}
			}

			newDisplay(a.out).store(store)
			_, err = a.cfg.Sink().Publish(a.out, wordle.Filter(s.Dictionary(), store))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&guesses, "guess", "g", nil, "a guess and its feedback, word=feedback (repeatable)")
	return cmd
}
