package usecase

import (
	"fmt"
	"sort"

	"stem/internal/port"
)

// LookupUseCase resolves a query word to its indexed term and returns the
// documents containing it. The query goes through the same analyzer as the
// indexed text, so "Connecting" finds documents that said "connected".
type LookupUseCase struct {
	store     port.TermStore
	tokenizer port.Tokenizer
}

// NewLookupUseCase creates a new lookup use case.
func NewLookupUseCase(store port.TermStore, tokenizer port.Tokenizer) *LookupUseCase {
	return &LookupUseCase{
		store:     store,
		tokenizer: tokenizer,
	}
}

// TermHit is one document containing the looked-up term.
type TermHit struct {
	Path string `json:"path"`
	TF   int    `json:"tf"`
}

// LookupResult is the outcome of a term lookup.
type LookupResult struct {
	Term string    `json:"term"`
	Hits []TermHit `json:"hits"`
}

// Lookup analyzes word and returns up to topK documents containing its
// normalized form, most frequent first.
func (u *LookupUseCase) Lookup(word string, topK int) (*LookupResult, error) {
	tokens := u.tokenizer.Tokenize(word)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no indexable term in %q (stopword or too short)", word)
	}
	term := tokens[0]

	postings, err := u.store.GetPostings(term)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings: %w", err)
	}

	sort.Slice(postings, func(i, j int) bool {
		if postings[i].TF != postings[j].TF {
			return postings[i].TF > postings[j].TF
		}
		return postings[i].DocID < postings[j].DocID
	})
	if topK > 0 && len(postings) > topK {
		postings = postings[:topK]
	}

	hits := make([]TermHit, 0, len(postings))
	for _, p := range postings {
		doc, err := u.store.GetDoc(p.DocID)
		if err != nil {
			continue
		}
		hits = append(hits, TermHit{Path: doc.Path, TF: p.TF})
	}

	return &LookupResult{Term: term, Hits: hits}, nil
}
