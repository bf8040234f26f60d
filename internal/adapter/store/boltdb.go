package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"stem/internal/domain"
)

var (
	bucketDocs     = []byte("docs")
	bucketTerms    = []byte("terms")
	bucketDocTerms = []byte("doc_terms")
	bucketStats    = []byte("stats")
	keyStats       = []byte("corpus_stats")
)

// BoltStore persists the term index in a bbolt database. Postings are kept
// per term as a JSON-encoded list; doc_terms maps each document back to its
// terms so a document can be removed without scanning the whole term bucket.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketTerms, bucketDocTerms, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type docMeta struct {
	Path    string `json:"path"`
	ModTime int64  `json:"mod_time"`
	Tokens  int    `json:"tokens"`
}

func (s *BoltStore) PutDoc(doc domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := docMeta{
			Path:    doc.Path,
			ModTime: doc.ModTime.Unix(),
			Tokens:  doc.Tokens,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDocs).Put([]byte(doc.ID), data)
	})
}

func (s *BoltStore) GetDoc(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document not found: %s", id)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = domain.Document{
			ID:      id,
			Path:    meta.Path,
			ModTime: time.Unix(meta.ModTime, 0),
			Tokens:  meta.Tokens,
		}
		return nil
	})
	return doc, err
}

func (s *BoltStore) DeleteDoc(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).Delete([]byte(id))
	})
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocs)
		return b.ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, domain.Document{
				ID:      string(k),
				Path:    meta.Path,
				ModTime: time.Unix(meta.ModTime, 0),
				Tokens:  meta.Tokens,
			})
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) PutPostings(docID string, freqs map[string]int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		termBucket := tx.Bucket(bucketTerms)
		terms := make([]string, 0, len(freqs))

		for term, tf := range freqs {
			var postings []domain.Posting
			if data := termBucket.Get([]byte(term)); data != nil {
				json.Unmarshal(data, &postings)
			}

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
			data, err := json.Marshal(postings)
			if err != nil {
				return err
			}
			if err := termBucket.Put([]byte(term), data); err != nil {
				return err
			}
			terms = append(terms, term)
		}

		data, err := json.Marshal(terms)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDocTerms).Put([]byte(docID), data)
	})
}

func (s *BoltStore) GetPostings(term string) ([]domain.Posting, error) {
	var postings []domain.Posting
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTerms).Get([]byte(term))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &postings)
	})
	return postings, err
}

func (s *BoltStore) DeletePostingsByDoc(docID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docTerms := tx.Bucket(bucketDocTerms)
		data := docTerms.Get([]byte(docID))
		if data == nil {
			return nil
		}
		var terms []string
		if err := json.Unmarshal(data, &terms); err != nil {
			return err
		}

		termBucket := tx.Bucket(bucketTerms)
		for _, term := range terms {
			data := termBucket.Get([]byte(term))
			if data == nil {
				continue
			}
			var postings []domain.Posting
			if err := json.Unmarshal(data, &postings); err != nil {
				continue
			}

			filtered := make([]domain.Posting, 0, len(postings))
			for _, p := range postings {
				if p.DocID != docID {
					filtered = append(filtered, p)
				}
			}
			if len(filtered) == 0 {
				termBucket.Delete([]byte(term))
			} else {
				data, _ := json.Marshal(filtered)
				termBucket.Put([]byte(term), data)
			}
		}
		return docTerms.Delete([]byte(docID))
	})
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// TermCount returns the number of distinct terms in the index.
func (s *BoltStore) TermCount() (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketTerms).Stats().KeyN
		return nil
	})
	return count, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
