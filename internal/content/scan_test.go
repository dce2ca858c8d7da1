package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, dir, name, data string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestScanCollectsPagesAndIssues(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "good.md", "Title: Good\nStatus: published\n\nHello.\n")
	writeContent(t, dir, "posts/bad-status.md", "Title: Bad\nStatus: pending\n\nHello.\n")
	writeContent(t, dir, "untitled.md", "Status: draft\n\nNo title.\n")
	writeContent(t, dir, "notes.txt", "ignored, not markdown")

	result, err := Scan(dir)
	require.NoError(t, err)

	assert.Len(t, result.Pages, 3)
	require.Len(t, result.Issues, 2)

	var messages []string
	for _, i := range result.Issues {
		messages = append(messages, i.String())
	}
	assert.Contains(t, messages[0]+messages[1], "unknown status")
	assert.Contains(t, messages[0]+messages[1], "missing Title")
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "content"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLintCleanContent(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "a.md", "Title: A\n\n# Heading\n\nSome *markdown*.\n")

	result, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, Lint(result))
}

func TestExtractExternalLinks(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "a.md",
		"Title: A\n\n[Pelican](https://getpelican.com/) and [local](/about.html) "+
			"and <https://python.org/> and [again](https://getpelican.com/).\n")

	result, err := Scan(dir)
	require.NoError(t, err)

	links, err := ExtractExternalLinks(result)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"https://getpelican.com/", "https://python.org/"}, links)
}
