package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/autotag/internal/errors"
)

// Cleaner removes generated files recorded in an output directory's manifest
type Cleaner struct {
	root string
}

// NewCleaner creates a cleaner for an output directory
func NewCleaner(root string) *Cleaner {
	return &Cleaner{root: root}
}

// Clean removes every file listed in the manifest, then the manifest itself.
// Files not in the manifest are never touched. Without a manifest it does nothing.
func (c *Cleaner) Clean() ([]string, error) {
	manifest, err := ReadManifest(c.root)
	if err != nil {
		return nil, err
	}
	if manifest == nil {
		return nil, nil
	}

	removed, err := c.Remove(manifest.Files)
	if err != nil {
		return removed, err
	}

	path := filepath.Join(c.root, ManifestFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return removed, errors.WrapFileSystemError("remove", path, err)
	}
	return removed, nil
}

// Remove deletes the given manifest entries and any directories left empty
// by that. Entries that no longer exist are skipped.
func (c *Cleaner) Remove(files []string) ([]string, error) {
	var removed []string
	collected := errors.NewMultipleErrors()

	for _, file := range files {
		local := filepath.FromSlash(file)
		if !filepath.IsLocal(local) {
			collected.Add(errors.ConfigurationError(fmt.Sprintf("manifest entry %q is outside the output directory", file)))
			continue
		}

		path := filepath.Join(c.root, local)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			collected.Add(errors.WrapFileSystemError("remove", path, err))
			continue
		}
		removed = append(removed, file)
		c.pruneEmptyParents(filepath.Dir(path))
	}

	return removed, collected.ErrorOrNil()
}

// pruneEmptyParents removes empty directories from dir up to the root
func (c *Cleaner) pruneEmptyParents(dir string) {
	root := filepath.Clean(c.root)
	for dir != root && len(dir) > len(root) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
