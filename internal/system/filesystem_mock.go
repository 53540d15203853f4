package system

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// It records every call so tests can assert that no filesystem access happened.
type MockFileSystem struct {
	mu sync.Mutex
	// Files holds file contents keyed by path
	Files map[string][]byte
	// Dirs holds paths that should be reported as directories
	Dirs map[string]bool
	// Errors forces an operation ("stat", "read", "write") to fail for a path
	Errors map[string]map[string]error

	StatCalls  int
	ReadCalls  int
	WriteCalls int
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:  make(map[string][]byte),
		Dirs:   make(map[string]bool),
		Errors: make(map[string]map[string]error),
	}
}

// SetError makes op fail with err for path.
func (m *MockFileSystem) SetError(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Errors[op] == nil {
		m.Errors[op] = make(map[string]error)
	}
	m.Errors[op][path] = err
}

// Calls returns the total number of filesystem calls made so far.
func (m *MockFileSystem) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.StatCalls + m.ReadCalls + m.WriteCalls
}

func (m *MockFileSystem) injected(op, path string) error {
	if errs, ok := m.Errors[op]; ok {
		return errs[path]
	}
	return nil
}

// Stat reports directories, files, or os.ErrNotExist.
func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatCalls++

	if err := m.injected("stat", path); err != nil {
		return nil, err
	}
	if m.Dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir | 0755}, nil
	}
	if content, ok := m.Files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: DefaultFilePerms}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// ReadFile returns a copy of the stored content.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++

	if err := m.injected("read", path); err != nil {
		return nil, err
	}
	content, ok := m.Files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++

	if err := m.injected("write", path); err != nil {
		return err
	}
	m.Files[path] = append([]byte(nil), content...)
	return nil
}

type mockFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) Mode() os.FileMode  { return i.mode }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *mockFileInfo) Sys() any           { return nil }
