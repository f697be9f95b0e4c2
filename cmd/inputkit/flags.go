package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
)

func validateFilePath(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", kind)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", kind, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", kind, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", kind, abs)
	}

	return nil
}

// loadTheme returns the theme at path, or the built-in theme when path is
// empty.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	if err := validateFilePath("theme", path); err != nil {
		return nil, err
	}
	return theme.Load(path)
}

// documentTheme resolves the theme for doc. An explicit override wins;
// otherwise a relative theme path in the document is taken relative to the
// document itself.
func documentTheme(doc *config.Document, docPath, override string) (*theme.Theme, error) {
	if override != "" {
		return loadTheme(override)
	}
	if doc.Theme == "" {
		return theme.Default(), nil
	}
	path := doc.Theme
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(docPath), path)
	}
	return loadTheme(path)
}
