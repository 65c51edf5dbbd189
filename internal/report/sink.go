// Package report publishes a candidate list: small lists are shown directly, larger
// ones are written to an artifact file and only counted.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultThreshold = 20
	DefaultPath      = "wordle_possible_words.txt"
)

// Sink decides how a candidate list reaches the user.
type Sink struct {
	// Lists shorter than Threshold are rendered in full.
	Threshold int
	// Path receives the artifact for lists of Threshold words or more.
	Path string
}

// Result describes what Publish did.
type Result struct {
	Count     int
	Displayed bool
	// Artifact is the file written, empty when the list was displayed.
	Artifact string
}

func (s Sink) threshold() int {
	if s.Threshold <= 0 {
		return DefaultThreshold
	}
	return s.Threshold
}

func (s Sink) path() string {
	if s.Path == "" {
		return DefaultPath
	}
	return s.Path
}

// Publish renders words to w, or persists them to the artifact and reports the count.
func (s Sink) Publish(w io.Writer, words []string) (Result, error) {
	res := Result{Count: len(words)}
	if len(words) < s.threshold() {
		res.Displayed = true
		fmt.Fprintf(w, "%d Possible Wordle Words:\n", len(words))
		for _, word := range words {
			fmt.Fprintln(w, word)
		}
		return res, nil
	}

	var b strings.Builder
	for _, word := range words {
		b.WriteString(word)
		b.WriteByte('\n')
	}
	if err := writeFile(s.path(), []byte(b.String()), 0o644); err != nil {
		return res, fmt.Errorf("writing %s: %w", s.path(), err)
	}
	res.Artifact = s.path()
	fmt.Fprintf(w, "See file %s for possible words. %d possible.\n", res.Artifact, res.Count)
	return res, nil
}

// writeFile writes b via a temp file in the target directory, then renames it over path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
