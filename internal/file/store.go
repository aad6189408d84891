package file

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/textenc/internal/config"
	"github.com/Cyclone1070/textenc/internal/fsutil"
	"github.com/Cyclone1070/textenc/internal/textcodec"
)

// Store loads and saves Files through an injected filesystem.
type Store struct {
	fileOps fileSystem
	config  *config.Config
}

// NewStore creates a new Store with injected dependencies.
func NewStore(fileOps fileSystem, cfg *config.Config) *Store {
	return &Store{
		fileOps: fileOps,
		config:  cfg,
	}
}

// Open reads the file at path and classifies its content.
// Directories and files above files.max_file_size are rejected before any
// content is read.
func (s *Store) Open(path string) (*File, error) {
	data, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(path, data), nil
}

// ReadToString reads the file at path as text. Validation failures and
// binary content are returned as errors.
func (s *Store) ReadToString(path string) (string, error) {
	data, err := s.Read(path)
	if err != nil {
		return "", err
	}
	text, err := textcodec.Decode(data)
	if err != nil {
		return "", err
	}
	return text.String(), nil
}

// Save writes the content of f to its path atomically.
// An existing file keeps its permissions; a new one gets files.default_perm.
func (s *Store) Save(f *File) error {
	if f.Path() == "" {
		return ErrPathRequired
	}

	perm := s.config.Files.FileMode()
	info, err := s.fileOps.Stat(f.Path())
	switch {
	case err == nil && info.IsDir():
		return &IsDirectoryError{Path: f.Path()}
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, os.ErrNotExist):
		return &StatError{Path: f.Path(), Cause: err}
	}

	parentDir := filepath.Dir(f.Path())
	if err := s.fileOps.EnsureDirs(parentDir); err != nil {
		return &EnsureDirsError{Path: parentDir, Cause: err}
	}

	if err := s.fileOps.WriteFileAtomic(f.Path(), f.Content().Bytes(), perm); err != nil {
		return &WriteError{Path: f.Path(), Cause: err}
	}
	return nil
}

// Convert returns a copy of f whose text is tagged with enc, so the next Save
// writes it in that encoding. Binary content cannot be converted.
func (s *Store) Convert(f *File, enc textcodec.Encoding) (*File, error) {
	text, ok := f.Text()
	if !ok {
		return nil, ErrBinaryFile
	}
	if !enc.Valid() {
		return nil, &textcodec.UnknownEncodingError{Name: enc.String()}
	}
	return f.WithContent(EncodedContent{Text: text.WithEncoding(enc)}), nil
}

// Read returns the raw bytes at path under the same checks as Open.
func (s *Store) Read(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	info, err := s.fileOps.Stat(path)
	if err != nil {
		return nil, &StatError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: path}
	}

	maxFileSize := s.config.Files.MaxFileSize
	if info.Size() > maxFileSize {
		return nil, &TooLargeError{Path: path, Size: info.Size(), Limit: maxFileSize}
	}

	// The file may grow between Stat and read, so the limit is enforced again.
	data, err := s.fileOps.ReadFile(path, maxFileSize)
	if err != nil {
		var limitErr *fsutil.SizeLimitError
		if errors.As(err, &limitErr) {
			return nil, &TooLargeError{Path: path, Size: maxFileSize + 1, Limit: maxFileSize}
		}
		return nil, &ReadError{Path: path, Cause: err}
	}
	return data, nil
}
