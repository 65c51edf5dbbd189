package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"

	"crosswarped.com/wordle/pkg/primitives"
)

// DefaultAlphabet is used when no alphabet is configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Source yields raw dictionary entries.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// StaticSource is a fixed list of words.
type StaticSource []string

func (s StaticSource) Words(ctx context.Context) ([]string, error) {
	return s, ctx.Err()
}

// FileSource reads one word per line from Path.
type FileSource struct {
	Path string
	// Progress, when set, receives a progress bar while the file is read.
	Progress io.Writer
}

func (f FileSource) Words(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if f.Progress != nil {
		info, err := file.Stat()
		if err != nil {
			return nil, err
		}
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(f.Progress),
			progressbar.OptionSetDescription("loading "+f.Path),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		r = io.TeeReader(file, bar)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return words, nil
}

// Load reads src and keeps the words of exactly width letters. A failing source is
// logged and yields an empty set.
func Load(ctx context.Context, src Source, width int, log *slog.Logger) *primitives.WordSet {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	raw, err := src.Words(ctx)
	if err != nil {
		log.Error("could not load dictionary, continuing with no words", "error", err)
		raw = nil
	}
	ws := primitives.NewWordSet(raw, width)
	log.Info("loaded dictionary", "entries", len(raw), "words", ws.Len(), "length", width)
	return ws
}

// ParseAlphabet builds an alphabet from the letters in s, ignoring whitespace and case.
func ParseAlphabet(s string) (*primitives.CharSet, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("alphabet: %q is not a letter", r)
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("alphabet is empty")
	}
	return primitives.CharSetOf(b.String()), nil
}

// LoadAlphabet reads an alphabet file. A missing or unreadable file is logged and the
// default alphabet is used instead.
func LoadAlphabet(path string, log *slog.Logger) *primitives.CharSet {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	b, err := os.ReadFile(path)
	if err == nil {
		var set *primitives.CharSet
		if set, err = ParseAlphabet(string(b)); err == nil {
			return set
		}
	}
	log.Error("could not load alphabet, using default", "path", path, "error", err)
	return primitives.CharSetOf(DefaultAlphabet)
}
