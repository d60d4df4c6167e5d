package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, int]()

	cache.Set("key1", 42)
	value, exists := cache.Get("key1")
	if !exists {
		t.Error("expected key1 to exist")
	}
	if value != 42 {
		t.Errorf("expected value 42, got %d", value)
	}

	_, exists = cache.Get("nonexistent")
	if exists {
		t.Error("expected nonexistent key to not exist")
	}

	cache.Delete("key1")
	_, exists = cache.Get("key1")
	if exists {
		t.Error("expected key1 to be deleted")
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache[string, string]()

	cache.Set("key1", "value1")
	cache.Set("key2", "value2")

	if cache.Size() != 2 {
		t.Errorf("expected size 2, got %d", cache.Size())
	}

	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("expected size 0 after clear, got %d", cache.Size())
	}
}

func TestCache_FileInvalidation(t *testing.T) {
	cache := NewCache[string, string]()
	tmpFile := filepath.Join(t.TempDir(), "DoStuffModel.java")

	if err := os.WriteFile(tmpFile, []byte("class DoStuffModel {}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := cache.SetFromFile("key", "parsed", tmpFile); err != nil {
		t.Fatalf("SetFromFile failed: %v", err)
	}

	value, ok := cache.GetFresh("key", tmpFile)
	if !ok || value != "parsed" {
		t.Errorf("expected fresh cached value, got %q (ok=%v)", value, ok)
	}

	// Different size and a later modification time
	future := time.Now().Add(time.Hour)
	if err := os.WriteFile(tmpFile, []byte("class DoStuffModel { int x; }"), 0644); err != nil {
		t.Fatalf("failed to rewrite test file: %v", err)
	}
	if err := os.Chtimes(tmpFile, future, future); err != nil {
		t.Fatalf("failed to touch test file: %v", err)
	}

	if _, ok := cache.GetFresh("key", tmpFile); ok {
		t.Error("expected stale entry to be evicted")
	}
	if cache.Size() != 0 {
		t.Errorf("expected stale entry removed, size is %d", cache.Size())
	}
}

func TestCache_SetFromMissingFile(t *testing.T) {
	cache := NewCache[string, int]()

	if err := cache.SetFromFile("key", 1, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
	if cache.Size() != 0 {
		t.Errorf("expected nothing cached, size is %d", cache.Size())
	}
}
