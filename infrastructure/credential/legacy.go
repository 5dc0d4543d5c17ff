package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// legacyKeyFile is the flat file older installations stored the key in.
const legacyKeyFile = "openai_key"

// FileStore reads the legacy flat-file key under the data directory.
type FileStore struct {
	path string
}

var _ LegacyStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at the data directory.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, legacyKeyFile)}
}

// Load returns the stored key, or ("", nil) when the file does not exist.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read legacy key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the legacy key file. A missing file is success.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove legacy key file: %w", err)
	}
	return nil
}
