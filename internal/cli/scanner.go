package cli

import (
	"fmt"

	"github.com/toyz/autotag/internal/errors"
	"github.com/toyz/autotag/internal/utils"
)

// SourceScanner expands configured paths into Java sources and descriptor files
type SourceScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewSourceScanner creates a scanner sharing reader with the providers
func NewSourceScanner(reader *utils.FileReader) *SourceScanner {
	return &SourceScanner{
		fileProcessor: utils.NewFileProcessorWithReader(reader),
	}
}

// FindSources returns the .java files named by paths.
// Supports Go-style patterns like "src/..." for recursive scanning.
func (s *SourceScanner) FindSources(paths []string) ([]string, error) {
	return s.find(paths, utils.JavaFileFilter(), "Java source")
}

// FindDescriptors returns the .yaml and .yml files named by paths
func (s *SourceScanner) FindDescriptors(paths []string) ([]string, error) {
	return s.find(paths, utils.SuffixFileFilter(".yaml", ".yml"), "descriptor")
}

func (s *SourceScanner) find(paths []string, filter utils.FileFilter, kind string) ([]string, error) {
	files, err := s.fileProcessor.FindFiles(paths, filter)
	if err != nil {
		return nil, errors.WrapWithOperation("scan", fmt.Sprintf("%s paths", kind), err).
			WithSuggestions(
				"Check that the configured paths exist",
				"Paths are relative to the configuration file",
			)
	}
	if len(files) == 0 {
		return nil, errors.ConfigurationError(fmt.Sprintf("no %s files found in %v", kind, paths)).
			WithSuggestion(`Use "dir/..." to scan subdirectories`)
	}
	return files, nil
}
