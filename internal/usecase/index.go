package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"stem/internal/domain"
	"stem/internal/port"
)

// IndexUseCase builds and maintains the term index: it walks a directory,
// analyzes each file and stores per-document term frequencies.
type IndexUseCase struct {
	store     port.TermStore
	walker    port.FileWalker
	reader    port.FileReader
	tokenizer port.Tokenizer
}

// NewIndexUseCase creates a new index use case.
func NewIndexUseCase(
	store port.TermStore,
	walker port.FileWalker,
	reader port.FileReader,
	tokenizer port.Tokenizer,
) *IndexUseCase {
	return &IndexUseCase{
		store:     store,
		walker:    walker,
		reader:    reader,
		tokenizer: tokenizer,
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed int
	FilesSkipped int
	FilesDeleted int
	TokensSeen   int
	Errors       []string
}

// ProgressFunc reports indexing progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// Index indexes files under root. Unchanged files (by mod time) are
// skipped; files that disappeared since the last run are removed from the
// index.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existingDocs, err := u.store.ListDocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}

	existingMap := make(map[string]domain.Document)
	for _, doc := range existingDocs {
		existingMap[doc.Path] = doc
	}

	seenPaths := make(map[string]bool)
	totalDocs := 0
	totalTokens := 0

	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.Path)
		}
		seenPaths[file.Path] = true

		if existing, ok := existingMap[file.Path]; ok {
			if existing.ModTime.Unix() >= file.ModTime {
				result.FilesSkipped++
				totalDocs++
				totalTokens += existing.Tokens
				continue
			}
			// File modified, drop its old postings before re-indexing
			if err := u.deleteDocument(existing.ID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to delete old data for %s: %v", file.Path, err))
			}
		}

		tokens, err := u.indexFile(file)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", file.Path, err))
			continue
		}
		result.FilesIndexed++
		result.TokensSeen += tokens
		totalDocs++
		totalTokens += tokens
	}

	for path, doc := range existingMap {
		if !seenPaths[path] {
			if err := u.deleteDocument(doc.ID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			} else {
				result.FilesDeleted++
			}
		}
	}

	terms, err := u.store.TermCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count terms: %w", err)
	}

	avgTokens := 0.0
	if totalDocs > 0 {
		avgTokens = float64(totalTokens) / float64(totalDocs)
	}
	stats := domain.Stats{
		TotalDocs:    totalDocs,
		TotalTerms:   terms,
		AvgDocTokens: avgTokens,
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	if progress != nil {
		progress(len(files), len(files), "")
	}
	return result, nil
}

func (u *IndexUseCase) indexFile(file port.FileInfo) (int, error) {
	content, err := u.reader.ReadFile(file.Path)
	if err != nil {
		return 0, err
	}

	tokens := u.tokenizer.Tokenize(content)
	freqs := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freqs[tok]++
	}

	id := docID(file.Path)
	doc := domain.Document{
		ID:      id,
		Path:    file.Path,
		ModTime: time.Unix(file.ModTime, 0),
		Tokens:  len(tokens),
	}
	if err := u.store.PutDoc(doc); err != nil {
		return 0, err
	}
	if err := u.store.PutPostings(id, freqs); err != nil {
		return 0, err
	}
	return len(tokens), nil
}

func (u *IndexUseCase) deleteDocument(id string) error {
	if err := u.store.DeletePostingsByDoc(id); err != nil {
		return err
	}
	return u.store.DeleteDoc(id)
}

func docID(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:8])
}
