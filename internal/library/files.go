package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrFileNotFound = errors.New("file not found")
)

// Resolve maps a slash-separated library path onto a regular file under root.
// Paths that climb out of root or are absolute are rejected.
func Resolve(root, rel string) (string, error) {
	if rel == "" || strings.Contains(rel, "..") || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return "", ErrInvalidPath
	}
	full := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrFileNotFound
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrFileNotFound
	}
	return full, nil
}
