package mocks

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Cyclone1070/textenc/internal/fsutil"
)

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal  string
	SizeVal  int64
	ModeVal  os.FileMode
	IsDirVal bool
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *MockFileInfo) IsDir() bool        { return f.IsDirVal }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileSystem implements the file store's filesystem with in-memory storage.
type MockFileSystem struct {
	Mu        sync.RWMutex
	Files     map[string][]byte        // path -> content
	FileInfos map[string]*MockFileInfo // path -> metadata
	Dirs      map[string]bool          // path -> is directory
	Errors    map[string]error         // path -> error to return
	OpErrors  map[string]error         // operation -> error to return
	Writes    []string                 // paths written, in order
}

// NewMockFileSystem creates a new mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:     make(map[string][]byte),
		FileInfos: make(map[string]*MockFileInfo),
		Dirs:      make(map[string]bool),
		Errors:    make(map[string]error),
		OpErrors:  make(map[string]error),
	}
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for a specific operation
// ("ReadFile", "WriteFileAtomic", "EnsureDirs").
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile creates a file with content
func (f *MockFileSystem) CreateFile(path string, content []byte, perm os.FileMode) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.putFile(path, content, perm)
}

// CreateDir creates a directory
func (f *MockFileSystem) CreateDir(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Dirs[path] = true
	f.FileInfos[path] = &MockFileInfo{
		NameVal:  filepath.Base(path),
		ModeVal:  os.ModeDir | 0o755,
		IsDirVal: true,
	}
}

// Content returns the stored bytes of path.
func (f *MockFileSystem) Content(path string) ([]byte, bool) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	content, ok := f.Files[path]
	return bytes.Clone(content), ok
}

// Mode returns the stored permissions of path.
func (f *MockFileSystem) Mode(path string) os.FileMode {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	if info, ok := f.FileInfos[path]; ok {
		return info.ModeVal
	}
	return 0
}

func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	if info, ok := f.FileInfos[path]; ok {
		return info, nil
	}

	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (f *MockFileSystem) ReadFile(path string, limit int64) ([]byte, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ReadFile"]; ok {
		return nil, err
	}
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}

	content, ok := f.Files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	if limit > 0 && int64(len(content)) > limit {
		return nil, &fsutil.SizeLimitError{Path: path, Limit: limit}
	}

	return bytes.Clone(content), nil
}

func (f *MockFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err, ok := f.OpErrors["WriteFileAtomic"]; ok {
		return err
	}

	f.putFile(path, bytes.Clone(content), perm)
	f.Writes = append(f.Writes, path)
	return nil
}

func (f *MockFileSystem) EnsureDirs(path string) error {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	if err, ok := f.OpErrors["EnsureDirs"]; ok {
		return err
	}

	f.Dirs[path] = true
	return nil
}

// putFile stores content; callers hold the lock.
func (f *MockFileSystem) putFile(path string, content []byte, perm os.FileMode) {
	f.Files[path] = content
	f.FileInfos[path] = &MockFileInfo{
		NameVal: filepath.Base(path),
		SizeVal: int64(len(content)),
		ModeVal: perm,
	}
	f.Dirs[path] = false
}
