package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// OutputLocator hands out writers for generated files. Paths are
// slash-separated and relative to the locator's root.
type OutputLocator interface {
	Writer(path string) (io.WriteCloser, error)
}

// DirectoryOutputLocator writes files under a root directory and remembers
// every path it handed out.
type DirectoryOutputLocator struct {
	root    string
	mu      sync.Mutex
	written []string
}

// NewDirectoryOutputLocator creates a locator rooted at dir
func NewDirectoryOutputLocator(dir string) *DirectoryOutputLocator {
	return &DirectoryOutputLocator{root: dir}
}

// Root returns the output directory
func (l *DirectoryOutputLocator) Root() string {
	return l.root
}

// Writer creates the file and its parent directories
func (l *DirectoryOutputLocator) Writer(path string) (io.WriteCloser, error) {
	local := filepath.FromSlash(path)
	if !filepath.IsLocal(local) {
		return nil, fmt.Errorf("output path %q escapes the output directory", path)
	}

	full := filepath.Join(l.root, local)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(full)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.written = append(l.written, path)
	l.mu.Unlock()
	return f, nil
}

// Written returns the paths handed out so far, in order
func (l *DirectoryOutputLocator) Written() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.written...)
}

// MemoryOutputLocator keeps generated files in memory
type MemoryOutputLocator struct {
	mu    sync.Mutex
	files map[string]*bytes.Buffer
}

// NewMemoryOutputLocator creates an empty in-memory locator
func NewMemoryOutputLocator() *MemoryOutputLocator {
	return &MemoryOutputLocator{files: make(map[string]*bytes.Buffer)}
}

// Writer implements OutputLocator; writing a path again replaces it
func (l *MemoryOutputLocator) Writer(path string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	l.mu.Lock()
	l.files[path] = buf
	l.mu.Unlock()
	return nopCloser{buf}, nil
}

// File returns the content written to path
func (l *MemoryOutputLocator) File(path string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, ok := l.files[path]
	if !ok {
		return "", false
	}
	return buf.String(), true
}

// Paths returns every written path, sorted
func (l *MemoryOutputLocator) Paths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	paths := make([]string, 0, len(l.files))
	for path := range l.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
