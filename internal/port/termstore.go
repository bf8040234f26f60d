package port

import "stem/internal/domain"

// TermStore persists documents and their term frequencies.
type TermStore interface {
	PutDoc(doc domain.Document) error

	GetDoc(id string) (domain.Document, error)

	DeleteDoc(id string) error

	ListDocs() ([]domain.Document, error)

	// PutPostings records the term frequencies of one document.
	PutPostings(docID string, freqs map[string]int) error

	// GetPostings returns every document containing term.
	GetPostings(term string) ([]domain.Posting, error)

	// DeletePostingsByDoc removes the document from every term it occurs in.
	DeletePostingsByDoc(docID string) error

	// TermCount returns the number of distinct terms in the index.
	TermCount() (int, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
