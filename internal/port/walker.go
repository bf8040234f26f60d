package port

// FileWalker enumerates the files under a root directory.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

// FileInfo is the subset of file metadata indexing needs.
type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}

// FileReader reads a file into memory.
type FileReader interface {
	ReadFile(path string) (string, error)
}
