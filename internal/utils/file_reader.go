package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FileReader reads source units as UTF-8 text, caching contents until the file changes
type FileReader struct {
	contentCache *Cache[string, string]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{
		contentCache: NewCache[string, string](),
	}
}

// ReadFile reads a file and returns its contents as a string
func (fr *FileReader) ReadFile(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}
	cleanPath := filepath.Clean(filePath)

	if cached, ok := fr.contentCache.GetFresh(cleanPath, cleanPath); ok {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filepath.Base(cleanPath), err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file %s is not valid UTF-8", filepath.Base(cleanPath))
	}

	contentStr := string(content)
	// A stat failure right after a successful read only costs the cache entry
	_ = fr.contentCache.SetFromFile(cleanPath, contentStr, cleanPath)

	return contentStr, nil
}

// InvalidateFile removes a specific file from the cache
func (fr *FileReader) InvalidateFile(filePath string) {
	fr.contentCache.Delete(filepath.Clean(filePath))
}

// CachedFiles returns how many file contents are cached
func (fr *FileReader) CachedFiles() int {
	return fr.contentCache.Size()
}
