// Package gitignore filters directory walks with .gitignore patterns.
package gitignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// maxIgnoreFileSize bounds how much of a .gitignore is read.
const maxIgnoreFileSize = 1 << 20

// ReadError is returned when .gitignore exists but cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

func (e *ReadError) IOError() bool { return true }

// fileSystem defines the minimal filesystem interface needed to load patterns.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string, limit int64) ([]byte, error)
}

// Matcher reports whether paths under root are ignored by root/.gitignore.
type Matcher struct {
	matcher gitignore.Matcher
}

// NewMatcher loads root/.gitignore. A missing file yields a Matcher that
// never ignores.
func NewMatcher(root string, fs fileSystem) (*Matcher, error) {
	ignorePath := filepath.Join(root, ".gitignore")

	if _, err := fs.Stat(ignorePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Matcher{}, nil
		}
		return nil, &ReadError{Path: ignorePath, Cause: err}
	}

	content, err := fs.ReadFile(ignorePath, maxIgnoreFileSize)
	if err != nil {
		return nil, &ReadError{Path: ignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range splitLines(string(content)) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return &Matcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks a path relative to the matcher root.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath splits a path into segments, dropping empty and "." parts.
func splitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// splitLines splits on \n, trimming a trailing \r from each line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
