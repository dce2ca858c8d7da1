package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/hatethatcode/siteconf/internal/logfields"
)

// Install clones a theme bundle from a git repository into themesDir. Theme
// bundles are distributed as plain git repositories, so a shallow clone of
// the default branch is all we need. Returns the installed theme path.
func Install(ctx context.Context, gitURL, themesDir, name string) (string, error) {
	if name == "" {
		name = nameFromURL(gitURL)
	}
	if name == "" {
		return "", fmt.Errorf("cannot derive theme name from %q, pass one explicitly", gitURL)
	}

	dest := filepath.Join(themesDir, name)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("theme already installed: %s", dest)
	}
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create themes directory: %w", err)
	}

	slog.Debug("Cloning theme", logfields.URL(gitURL), logfields.Path(dest))
	repo, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      gitURL,
		Depth:    1,
		Progress: os.Stdout,
	})
	if err != nil {
		_ = os.RemoveAll(dest)
		return "", fmt.Errorf("failed to clone theme %s: %w", gitURL, err)
	}

	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Theme installed", logfields.Theme(name), logfields.URL(gitURL),
			slog.String("commit", ref.Hash().String()[:8]))
	} else {
		slog.Info("Theme installed", logfields.Theme(name), logfields.URL(gitURL))
	}
	return dest, nil
}

// nameFromURL derives a theme directory name from the repository URL.
func nameFromURL(gitURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(gitURL, "/"), ".git")
	idx := strings.LastIndexAny(trimmed, "/:")
	if idx < 0 || idx == len(trimmed)-1 {
		return ""
	}
	return trimmed[idx+1:]
}
