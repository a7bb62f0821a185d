package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// CreateOutput resolves path to an absolute location, creates any missing
// parent directories, and opens the file for writing, truncating an existing
// export. It returns the open file and its absolute path.
func CreateOutput(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), dirPermissions); err != nil {
		return nil, "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return nil, "", fmt.Errorf("open output file: %w", err)
	}

	return file, abs, nil
}
