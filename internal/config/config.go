// Package config loads the YAML settings shared by the CLI and the HTTP function.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"crosswarped.com/wordle/internal/report"
)

type BigQuery struct {
	Project  string `yaml:"project"`
	Table    string `yaml:"table"`
	Scope    string `yaml:"scope"`
	Location string `yaml:"location,omitempty"`
}

// Enabled reports whether words should be read from BigQuery.
func (b BigQuery) Enabled() bool {
	return b.Project != "" && b.Table != "" && b.Scope != ""
}

type Config struct {
	WordLength       int    `yaml:"word_length"`
	DisplayThreshold int    `yaml:"display_threshold"`
	Output           string `yaml:"output"`
	// Dictionary is a word list file, one word per line.
	Dictionary string `yaml:"dictionary"`
	// Alphabet lists the letters in play; AlphabetFile, when set, takes precedence.
	Alphabet     string   `yaml:"alphabet"`
	AlphabetFile string   `yaml:"alphabet_file"`
	BigQuery     BigQuery `yaml:"bigquery"`
	LogLevel     string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		WordLength:       5,
		DisplayThreshold: report.DefaultThreshold,
		Output:           report.DefaultPath,
		Dictionary:       "words.txt",
		Alphabet:         "abcdefghijklmnopqrstuvwxyz",
		BigQuery:         BigQuery{Location: "US"},
		LogLevel:         "info",
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("word_length must be at least 1, got %d", c.WordLength)
	}
	if c.DisplayThreshold < 1 {
		return fmt.Errorf("display_threshold must be at least 1, got %d", c.DisplayThreshold)
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	return nil
}

// Sink returns the result sink described by c.
func (c Config) Sink() report.Sink {
	return report.Sink{Threshold: c.DisplayThreshold, Path: c.Output}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
