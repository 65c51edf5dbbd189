package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	wordle "crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/report"
)

func playCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Enter guesses and feedback interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := a.loadAlphabet()
			if err != nil {
				return err
			}
			store, err := wordle.NewStore(a.cfg.WordLength, alphabet)
			if err != nil {
				return err
			}
			dict := a.loadDictionary(cmd.Context())
			fmt.Fprintf(a.out, "%d words added to possibilities\n", dict.Len())
			fmt.Fprintf(a.out, "Possible letters: %s\n", alphabet)

			s := wordle.NewSession(store, dict, wordle.WithLogger(a.log))
			return play(cmd.Context(), s, a, a.cfg.Sink())
		},
	}
}

// play reads lines until the user enters an empty guess, input runs out, or every
// slot is resolved. Rejected lines are reported and the same question is asked again.
func play(ctx context.Context, s *wordle.Session, a *app, sink report.Sink) error {
	d := newDisplay(a.out)
	scanner := bufio.NewScanner(a.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, s.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return scanner.Err()
		}

		err := s.Submit(scanner.Text())
		switch {
		case errors.Is(err, wordle.ErrSessionEnded):
			return nil
		case errors.Is(err, wordle.ErrSessionComplete):
			fmt.Fprintf(a.out, "All letters resolved: %s\n", s.Store().Pattern())
			return nil
		case err != nil:
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		if s.State() != wordle.Applied {
			continue
		}

		d.outcome(s.Outcome())
		d.store(s.Store())
		if _, err := sink.Publish(a.out, s.Candidates()); err != nil {
			a.log.Error("could not publish candidates", "error", err)
		}
		if s.Outcome().Complete {
			fmt.Fprintf(a.out, "Solved: %s\n", s.Store().Pattern())
			return nil
		}
	}
}
