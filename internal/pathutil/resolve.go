// Package pathutil provides path resolution utilities for depthls.
package pathutil

import (
	"os"
	"path/filepath"
)

// Expand normalizes a user-supplied path or pattern text before it is
// matched against the filesystem. It expands a leading ~ to the user's
// home directory and cleans the result. It deliberately does not make
// the path absolute or resolve symlinks: output paths should keep the
// shape the user typed.
func Expand(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	return filepath.Clean(path), nil
}
