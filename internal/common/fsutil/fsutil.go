package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/.lmstudio/models
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// ExpandAll expands every path and drops the ones that cannot be resolved.
func ExpandAll(paths []string) []string {
	var out []string
	for _, p := range paths {
		abs, err := ExpandHome(p)
		if err != nil {
			continue
		}
		out = append(out, abs)
	}
	return out
}

// PathExists checks if the given path exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
