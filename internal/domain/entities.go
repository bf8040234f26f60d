package domain

import "time"

// Document is one indexed file.
type Document struct {
	ID      string
	Path    string
	ModTime time.Time
	Tokens  int
}

// Posting records how often a term occurs in one document.
type Posting struct {
	DocID string
	TF    int
}

// Stats describes the indexed corpus as a whole.
type Stats struct {
	TotalDocs    int
	TotalTerms   int
	AvgDocTokens float64
}
