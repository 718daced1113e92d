// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
)

// ListFiles returns the names of the regular entries directly inside dir for
// which keep returns true, in sorted order. It does not descend into
// subdirectories.
func ListFiles(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if keep(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListDirs returns the names of the subdirectories directly inside dir for
// which keep returns true, in sorted order.
func ListDirs(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if keep(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
