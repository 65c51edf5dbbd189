// Package httpfn serves the candidate filter as a stateless HTTP function. Every
// request carries its own word list and guesses and gets a fresh store.
package httpfn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	wordle "crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/dictionary"
	"crosswarped.com/wordle/pkg/primitives"
)

const maxWordLength = 32

type Guess struct {
	Word     string `json:"word"`
	Feedback string `json:"feedback"`
}

type FilterRequest struct {
	WordLength int      `json:"wordLength"`
	Alphabet   string   `json:"alphabet"`
	Words      []string `json:"words"`
	WordScope  string   `json:"wordScope"`
	Guesses    []Guess  `json:"guesses"`
	// Threshold, when positive, omits the candidate list once it has that many words.
	Threshold int `json:"threshold"`
}

type FilterResponse struct {
	Success    bool     `json:"success"`
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
	Slots      string   `json:"slots,omitempty"`
	Required   string   `json:"required,omitempty"`
	Alphabet   string   `json:"alphabet,omitempty"`
	Complete   bool     `json:"complete"`
	Error      string   `json:"error,omitempty"`
}

// Function handles POST /filter-candidates.
type Function struct {
	cfg config.Config
	log *slog.Logger

	// scoped builds the source for a wordScope request.
	scoped func(scope string, length int) dictionary.Source
}

func New(cfg config.Config, log *slog.Logger) *Function {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	f := &Function{cfg: cfg, log: log}
	f.scoped = func(scope string, length int) dictionary.Source {
		return dictionary.BigQuerySource{
			Project:  cfg.BigQuery.Project,
			Table:    cfg.BigQuery.Table,
			Scope:    scope,
			Length:   length,
			Location: cfg.BigQuery.Location,
		}
	}
	return f
}

func (f *Function) execute(ctx context.Context, req FilterRequest) (FilterResponse, error) {
	var resp FilterResponse
	if req.WordLength == 0 {
		req.WordLength = f.cfg.WordLength
	}
	if req.WordLength < 1 || req.WordLength > maxWordLength {
		return resp, fmt.Errorf("wordLength must be between 1 and %d", maxWordLength)
	}

	alphabet := primitives.CharSetOf(dictionary.DefaultAlphabet)
	if req.Alphabet != "" {
		var err error
		if alphabet, err = dictionary.ParseAlphabet(req.Alphabet); err != nil {
			return resp, err
		}
	}

	words := req.Words
	if req.WordScope != "" {
		if f.cfg.BigQuery.Project == "" || f.cfg.BigQuery.Table == "" {
			return resp, fmt.Errorf("wordScope %q given but no BigQuery table is configured", req.WordScope)
		}
		scoped, err := f.scoped(req.WordScope, req.WordLength).Words(ctx)
		if err != nil {
			return resp, fmt.Errorf("getWords: %w", err)
		}
		f.log.Info("loaded scoped words", "scope", req.WordScope, "words", len(scoped))
		words = append(words, scoped...)
	}
	if len(words) == 0 {
		return resp, fmt.Errorf("words must not be empty")
	}

	store, err := wordle.NewStore(req.WordLength, alphabet)
	if err != nil {
		return resp, err
	}
	session := wordle.NewSession(store, primitives.NewWordSet(words, req.WordLength), wordle.WithLogger(f.log))
	for i, g := range req.Guesses {
		fb, err := wordle.ParseFeedback(g.Feedback)
		if err != nil {
			return resp, fmt.Errorf("guess %d: %w", i+1, err)
		}
		if _, err := session.Round(g.Word, fb); err != nil {
			return resp, fmt.Errorf("guess %d (%s): %w", i+1, g.Word, err)
		}
	}

	candidates := wordle.Filter(session.Dictionary(), store)
	resp = FilterResponse{
		Success:    true,
		Count:      len(candidates),
		Candidates: candidates,
		Slots:      store.Pattern(),
		Required:   string(store.Required().Runes()),
		Alphabet:   string(store.Alphabet().Runes()),
		Complete:   store.Complete(),
	}
	if req.Threshold > 0 && len(candidates) >= req.Threshold {
		resp.Candidates = nil
	}
	return resp, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (f *Function) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(FilterResponse{Error: fmt.Sprintf("Method %s not allowed", r.Method)})
		return
	}

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.log.Warn("invalid request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FilterResponse{Error: fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}
	for i := range req.Words {
		req.Words[i] = strings.ToLower(req.Words[i])
	}

	resp, err := f.execute(r.Context(), req)
	if err != nil {
		f.log.Info("request rejected", "error", err)
		resp = FilterResponse{Error: err.Error()}
	} else if resp.Count == 0 {
		resp.Error = "No words are consistent with the given guesses"
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		f.log.Error("could not encode response", "error", err)
	}
}
