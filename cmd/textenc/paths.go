package main

import (
	"io/fs"
	"path/filepath"

	"github.com/Cyclone1070/textenc/internal/gitignore"
)

// expandPaths replaces every directory argument with the regular files below
// it, skipping .git and anything matched by the directory's .gitignore.
// Other arguments are kept as given so that reading them reports the error.
func expandPaths(deps *Dependencies, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := deps.FS.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		matcher, err := gitignore.NewMatcher(arg, deps.FS)
		if err != nil {
			return nil, err
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == ".git" || matcher.ShouldIgnore(rel, true) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && !matcher.ShouldIgnore(rel, false) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
