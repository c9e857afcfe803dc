package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalAdapter stores workspace content on the local file system under a
// single root directory.
type LocalAdapter struct {
	root string
}

// NewLocalAdapter creates the root directory and returns the adapter.
func NewLocalAdapter(root string) (*LocalAdapter, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %v", err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %v", err)
	}

	return &LocalAdapter{root: abs}, nil
}

// resolve maps a logical path onto the root. Canonical paths produced by
// Resolve already live under the root and pass through unchanged; any other
// path is workspace-relative, so "/ws/docs" and "ws/docs" name the same
// location. Nothing is ever read or written outside the root.
func (la *LocalAdapter) resolve(path string) string {
	if filepath.IsAbs(path) {
		clean := filepath.Clean(path)
		if clean == la.root || strings.HasPrefix(clean, la.root+string(filepath.Separator)) {
			return clean
		}
		path = strings.TrimPrefix(clean, string(filepath.Separator))
	}
	return filepath.Join(la.root, path)
}

func (la *LocalAdapter) CreateDirectories(path string) error {
	return os.MkdirAll(la.resolve(path), 0755)
}

func (la *LocalAdapter) Write(path string, data []byte) error {
	fullPath := la.resolve(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %v", err)
	}

	return os.WriteFile(fullPath, data, 0644)
}

func (la *LocalAdapter) Read(path string) ([]byte, error) {
	return os.ReadFile(la.resolve(path))
}

func (la *LocalAdapter) Move(oldPath, newPath string) error {
	dest := la.resolve(newPath)

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %v", err)
	}

	return os.Rename(la.resolve(oldPath), dest)
}

func (la *LocalAdapter) Delete(path string) error {
	return os.Remove(la.resolve(path))
}

func (la *LocalAdapter) Exists(path string) bool {
	_, err := os.Stat(la.resolve(path))
	return err == nil
}

// Walk returns every entry under path sorted deepest-first. Reverse
// lexicographic order guarantees children sort before their parent because a
// parent path is a strict prefix of its children.
func (la *LocalAdapter) Walk(path string) ([]string, error) {
	var entries []string
	err := filepath.Walk(la.resolve(path), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		entries = append(entries, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	return entries, nil
}

func (la *LocalAdapter) Resolve(parts ...string) string {
	all := append([]string{la.root}, parts...)
	return filepath.ToSlash(filepath.Join(all...))
}
