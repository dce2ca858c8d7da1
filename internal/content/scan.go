package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/logfields"
)

// Issue is a problem found in a content file.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string { return fmt.Sprintf("%s: %s", i.Path, i.Message) }

// ScanResult aggregates the pages discovered under the content directory and
// any structural issues found in them.
type ScanResult struct {
	Pages  []*Page
	Issues []Issue
}

// Scan walks the content directory, parses every markdown file, and checks
// declared status values against the recognized content states.
func Scan(contentDir string) (*ScanResult, error) {
	if _, err := os.Stat(contentDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("content directory does not exist: %s", contentDir)
	}

	result := &ScanResult{}
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		rel, rerr := filepath.Rel(contentDir, path)
		if rerr != nil {
			return rerr
		}

		page, perr := ParsePage(contentDir, rel)
		if perr != nil {
			result.Issues = append(result.Issues, Issue{Path: rel, Message: perr.Error()})
			return nil
		}
		result.Pages = append(result.Pages, page)

		if page.Title() == "" {
			result.Issues = append(result.Issues, Issue{Path: rel, Message: "missing Title metadata"})
		}
		if st := page.Status(); st != "" && config.NormalizeContentStatus(st) == "" {
			result.Issues = append(result.Issues, Issue{
				Path:    rel,
				Message: fmt.Sprintf("unknown status %q (allowed: %s)", st, strings.Join(config.ValidContentStatuses(), "|")),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content directory: %w", err)
	}

	slog.Debug("Content scan complete", logfields.Path(contentDir),
		logfields.Count(len(result.Pages)), slog.Int("issues", len(result.Issues)))
	return result, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
