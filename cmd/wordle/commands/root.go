package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/dictionary"
	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/pkg/primitives"
)

// app holds what every subcommand shares once flags and config are resolved.
type app struct {
	in       io.Reader
	out, err io.Writer

	configPath string
	length     int
	dictPath   string
	alphabet   string
	threshold  int
	output     string
	logLevel   string
	cpuProfile string

	cfg     config.Config
	log     *slog.Logger
	profile *os.File
}

func Execute() error {
	return execute(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
}

// execute runs the CLI. The CPU profile, if any, is stopped whether or not the command fails.
func execute(in io.Reader, out, errOut io.Writer, args []string) error {
	root, a := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	defer a.stopProfile()
	return root.Execute()
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{in: in, out: out, err: errOut}

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Narrow down the possible answers of a word-guessing game",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "wordle.yaml", "YAML config file")
	pf.IntVarP(&a.length, "length", "n", 5, "word length")
	pf.StringVarP(&a.dictPath, "dictionary", "d", "", "word list file, one word per line")
	pf.StringVar(&a.alphabet, "alphabet", "", "letters in play (default a-z)")
	pf.IntVar(&a.threshold, "threshold", 20, "show the words when fewer than this many remain")
	pf.StringVarP(&a.output, "output", "o", "", "file receiving longer word lists")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")

	root.AddCommand(playCmd(a), filterCmd(a), scoreCmd(a), configCmd(a))
	return root, a
}

func (a *app) stopProfile() {
	if a.profile == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := a.profile.Close(); err != nil && a.log != nil {
		a.log.Error("could not close CPU profile", "error", err)
	}
	a.profile = nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.WordLength = a.length
	}
	if flags.Changed("dictionary") {
		cfg.Dictionary = a.dictPath
		cfg.BigQuery = config.BigQuery{}
	}
	if flags.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
		cfg.AlphabetFile = ""
	}
	if flags.Changed("threshold") {
		cfg.DisplayThreshold = a.threshold
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(a.err, cfg.LogLevel).With("session", uuid.NewString())

	if a.cpuProfile != "" {
		f, err := os.Create(a.cpuProfile)
		if err != nil {
			return fmt.Errorf("creating profile file: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		a.profile = f
	}
	return nil
}

func (a *app) loadAlphabet() (*primitives.CharSet, error) {
	if a.cfg.AlphabetFile != "" {
		return dictionary.LoadAlphabet(a.cfg.AlphabetFile, a.log), nil
	}
	return dictionary.ParseAlphabet(a.cfg.Alphabet)
}

func (a *app) loadDictionary(ctx context.Context) *primitives.WordSet {
	var src dictionary.Source
	if bq := a.cfg.BigQuery; bq.Enabled() {
		src = dictionary.BigQuerySource{
			Project:  bq.Project,
			Table:    bq.Table,
			Scope:    bq.Scope,
			Length:   a.cfg.WordLength,
			Location: bq.Location,
		}
	} else {
		fs := dictionary.FileSource{Path: a.cfg.Dictionary}
		if isTerminal(a.err) {
			fs.Progress = a.err
		}
		src = fs
	}
	return dictionary.Load(ctx, src, a.cfg.WordLength, a.log)
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
