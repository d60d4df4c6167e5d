package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileReaderCaching(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "DoStuffModel.java")
	testContent := "package org.example;\n\npublic class DoStuffModel {}\n"

	if err := os.WriteFile(testFile, []byte(testContent), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	reader := NewFileReader()

	content, err := reader.ReadFile(testFile)
	if err != nil {
		t.Fatalf("First read failed: %v", err)
	}
	if content != testContent {
		t.Errorf("Unexpected content: %q", content)
	}
	if reader.CachedFiles() != 1 {
		t.Errorf("Expected 1 cached file, got %d", reader.CachedFiles())
	}

	// Modify the file
	newContent := "package org.example;\n\npublic class DoStuffModel { void execute() {} }\n"
	if err := os.WriteFile(testFile, []byte(newContent), 0644); err != nil {
		t.Fatalf("Failed to modify test file: %v", err)
	}
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(testFile, future, future); err != nil {
		t.Fatalf("Failed to touch test file: %v", err)
	}

	content, err = reader.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Second read failed: %v", err)
	}
	if content != newContent {
		t.Errorf("Expected modified content after file change, got %q", content)
	}

	reader.InvalidateFile(testFile)
	if reader.CachedFiles() != 0 {
		t.Errorf("Expected empty cache after invalidation, got %d", reader.CachedFiles())
	}
}

func TestFileReaderErrors(t *testing.T) {
	reader := NewFileReader()

	if _, err := reader.ReadFile(""); err == nil {
		t.Error("Expected error for empty path")
	}

	if _, err := reader.ReadFile(filepath.Join(t.TempDir(), "Missing.java")); err == nil {
		t.Error("Expected error for missing file")
	}

	binary := filepath.Join(t.TempDir(), "Binary.java")
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatalf("Failed to create binary file: %v", err)
	}
	_, err := reader.ReadFile(binary)
	if err == nil || !strings.Contains(err.Error(), "UTF-8") {
		t.Errorf("Expected UTF-8 error, got %v", err)
	}
}
