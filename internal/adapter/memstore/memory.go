package memstore

import (
	"fmt"
	"sync"

	"stem/internal/domain"
)

// MemoryStore is an in-memory TermStore used by tests and callers that do
// not need persistence.
type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string]domain.Document
	postings map[string][]domain.Posting
	docTerms map[string][]string
	stats    domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]domain.Document),
		postings: make(map[string][]domain.Posting),
		docTerms: make(map[string][]string),
	}
}

func (s *MemoryStore) PutDoc(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

func (s *MemoryStore) GetDoc(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document not found: %s", id)
	}
	return doc, nil
}

func (s *MemoryStore) DeleteDoc(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MemoryStore) PutPostings(docID string, freqs map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	terms := make([]string, 0, len(freqs))
	for term, tf := range freqs {
		postings := s.postings[term]
		found := false
		for i := range postings {
			if postings[i].DocID == docID {
				postings[i].TF = tf
				found = true
				break
			}
		}
		if !found {
			postings = append(postings, domain.Posting{DocID: docID, TF: tf})
		}
		s.postings[term] = postings
		terms = append(terms, term)
	}
	s.docTerms[docID] = terms
	return nil
}

func (s *MemoryStore) GetPostings(term string) ([]domain.Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	postings := s.postings[term]
	out := make([]domain.Posting, len(postings))
	copy(out, postings)
	return out, nil
}

func (s *MemoryStore) DeletePostingsByDoc(docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, term := range s.docTerms[docID] {
		postings := s.postings[term]
		filtered := postings[:0]
		for _, p := range postings {
			if p.DocID != docID {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			delete(s.postings, term)
		} else {
			s.postings[term] = filtered
		}
	}
	delete(s.docTerms, docID)
	return nil
}

func (s *MemoryStore) TermCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postings), nil
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
