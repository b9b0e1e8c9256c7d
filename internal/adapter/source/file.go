package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads one report file from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read report %s: %w", s.path, err)
	}

	return string(data), nil
}
