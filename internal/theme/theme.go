// Package theme resolves and installs the visual theme bundle referenced by
// the site configuration. Themes are directories of templates and styles that
// live alongside the configuration file; the generator consumes them, we only
// verify and fetch them.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hatethatcode/siteconf/internal/config"
)

// Resolve returns the absolute path of the configured theme directory,
// verifying it exists next to the configuration file. baseDir is the
// directory containing the configuration.
func Resolve(cfg *config.SiteConfig, baseDir string) (string, error) {
	if cfg.Theme == "" {
		return "", fmt.Errorf("no theme configured")
	}
	path := cfg.Theme
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("theme directory does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat theme directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("theme path is not a directory: %s", path)
	}
	return path, nil
}

// List returns the names of theme bundles installed under themesDir.
func List(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
