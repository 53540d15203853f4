package system

import (
	"fmt"
	"os"
)

// DefaultFilePerms is applied to files that do not exist yet.
// Existing files keep their current mode.
const DefaultFilePerms os.FileMode = 0644

// FileSystem handles file system operations on the local host
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Stat returns file info for path. The error is returned unwrapped so callers
// can test it with os.IsNotExist.
func (fs *FileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the whole file at path
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces the content of path in full, creating it if needed.
// The write is a plain truncate-and-write: a failure midway leaves the file
// in an undefined state.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perms)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return err
	}

	// Explicitly check close error to prevent silent data loss
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
