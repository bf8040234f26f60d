package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"stem/internal/adapter/analyzer"
	"stem/internal/adapter/fs"
	"stem/internal/adapter/memstore"
)

func newTestIndexer(store *memstore.MemoryStore) *IndexUseCase {
	tok := analyzer.NewTokenizer(analyzer.NewPorterStemmer())
	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	return NewIndexUseCase(store, walker, fs.Reader{}, tok)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndex_BuildsPostings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "The connected connections kept connecting.")
	writeFile(t, dir, "b.txt", "Runners running while other runners rest.")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)

	result, err := uc.Index(dir, nil)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if result.FilesIndexed != 2 {
		t.Errorf("expected 2 files indexed, got %d", result.FilesIndexed)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}

	// All three morphological variants collapse to one term
	postings, err := store.GetPostings("connect")
	if err != nil {
		t.Fatalf("GetPostings failed: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting for 'connect', got %d", len(postings))
	}
	if postings[0].TF != 3 {
		t.Errorf("expected TF=3 for 'connect', got %d", postings[0].TF)
	}

	stats, _ := store.GetStats()
	if stats.TotalDocs != 2 {
		t.Errorf("expected 2 docs in stats, got %d", stats.TotalDocs)
	}
	if stats.TotalTerms == 0 {
		t.Error("expected non-zero term count in stats")
	}
}

func TestIndex_SkipsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "connected connections")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)

	if _, err := uc.Index(dir, nil); err != nil {
		t.Fatalf("first Index failed: %v", err)
	}

	result, err := uc.Index(dir, nil)
	if err != nil {
		t.Fatalf("second Index failed: %v", err)
	}
	if result.FilesIndexed != 0 {
		t.Errorf("expected 0 files re-indexed, got %d", result.FilesIndexed)
	}
	if result.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped, got %d", result.FilesSkipped)
	}
}

func TestIndex_RemovesDeletedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "connected connections")
	gone := writeFile(t, dir, "b.txt", "temporary words here")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)

	if _, err := uc.Index(dir, nil); err != nil {
		t.Fatalf("first Index failed: %v", err)
	}

	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	result, err := uc.Index(dir, nil)
	if err != nil {
		t.Fatalf("second Index failed: %v", err)
	}
	if result.FilesDeleted != 1 {
		t.Errorf("expected 1 file deleted, got %d", result.FilesDeleted)
	}

	postings, _ := store.GetPostings("temporari")
	if len(postings) != 0 {
		t.Errorf("expected postings of deleted file to be gone, got %v", postings)
	}

	stats, _ := store.GetStats()
	if stats.TotalDocs != 1 {
		t.Errorf("expected 1 doc in stats after deletion, got %d", stats.TotalDocs)
	}
}

func TestIndex_ReportsProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "one file")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)

	calls := 0
	lastTotal := 0
	_, err := uc.Index(dir, func(processed, total int, currentFile string) {
		calls++
		lastTotal = total
	})
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if calls == 0 {
		t.Error("expected progress callbacks")
	}
	if lastTotal != 1 {
		t.Errorf("expected total=1 in progress, got %d", lastTotal)
	}
}

func TestLookup_FindsStemmedTerm(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "The connected connections kept connecting.")
	writeFile(t, dir, "b.txt", "Nothing relevant in this one.")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)
	if _, err := uc.Index(dir, nil); err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	lookup := NewLookupUseCase(store, analyzer.NewTokenizer(analyzer.NewPorterStemmer()))

	// Query uses a different morphological variant than the documents
	result, err := lookup.Lookup("Connection", 10)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if result.Term != "connect" {
		t.Errorf("expected query to normalize to 'connect', got %q", result.Term)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(result.Hits))
	}
	if filepath.Base(result.Hits[0].Path) != "a.txt" {
		t.Errorf("expected hit in a.txt, got %s", result.Hits[0].Path)
	}
	if result.Hits[0].TF != 3 {
		t.Errorf("expected TF=3, got %d", result.Hits[0].TF)
	}
}

func TestLookup_OrdersByFrequency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "stemming")
	writeFile(t, dir, "b.txt", "stemming stemming stemming")

	store := memstore.NewMemoryStore()
	uc := newTestIndexer(store)
	if _, err := uc.Index(dir, nil); err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	lookup := NewLookupUseCase(store, analyzer.NewTokenizer(analyzer.NewPorterStemmer()))
	result, err := lookup.Lookup("stemming", 10)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(result.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(result.Hits))
	}
	if filepath.Base(result.Hits[0].Path) != "b.txt" {
		t.Errorf("expected most frequent doc first, got %s", result.Hits[0].Path)
	}
	if result.Hits[0].TF < result.Hits[1].TF {
		t.Error("expected hits ordered by descending TF")
	}
}

func TestLookup_RejectsStopwords(t *testing.T) {
	store := memstore.NewMemoryStore()
	lookup := NewLookupUseCase(store, analyzer.NewTokenizer(analyzer.NewPorterStemmer()))

	if _, err := lookup.Lookup("the", 10); err == nil {
		t.Error("expected error for stopword query")
	}
}
