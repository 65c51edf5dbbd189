package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	wordle "crosswarped.com/wordle"
	"crosswarped.com/wordle/pkg/primitives"
)

func scoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS ANSWER",
		Short: "Print the feedback a guess would get against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := wordle.Score(primitives.NormalizeWord(args[0]), primitives.NormalizeWord(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, fb)
			return nil
		},
	}
}

func configCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = a.out.Write(b)
			return err
		},
	}
}
