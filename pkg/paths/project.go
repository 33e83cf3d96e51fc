package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ProjectFile marks the root of a Dart or Flutter package.
	ProjectFile = "pubspec.yaml"

	gitDir = ".git"
)

// ErrProjectNotFound indicates no enclosing project was found.
var ErrProjectNotFound = errors.New("project root not found")

// FindProjectRoot returns the closest directory at or above path that
// contains a [ProjectFile]. The search does not leave the enclosing git
// repository, so a stray pubspec.yaml in a parent checkout is never used.
func FindProjectRoot(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	for {
		if isFile(filepath.Join(dir, ProjectFile)) {
			return dir, nil
		}

		if exists(filepath.Join(dir, gitDir)) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf("%w: no %s above %s", ErrProjectNotFound, ProjectFile, path)
}

// ResolveRoot joins a relative root onto the project enclosing cwd. Absolute
// roots are returned unchanged.
func ResolveRoot(cwd, root string) (string, error) {
	if filepath.IsAbs(root) {
		return root, nil
	}

	project, err := FindProjectRoot(cwd)
	if err != nil {
		return "", err
	}

	return filepath.Join(project, root), nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)

	return err == nil && fi.Mode().IsRegular()
}

func exists(path string) bool {
	_, err := os.Lstat(path)

	return err == nil
}
