package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  author: Jane Doe
  name: Example Blog
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.Site.Path)
	assert.Equal(t, "UTC", cfg.Site.Timezone)
	assert.Equal(t, "en", cfg.Site.DefaultLang)
	assert.Equal(t, 10, cfg.Pagination)
	assert.Equal(t, StatusDraft, cfg.DefaultMetadata.Status)
	assert.False(t, cfg.Feeds.Enabled())
}

func TestLoadRejectsNegativePagination(t *testing.T) {
	// A configured negative value is an error, not something normalization
	// quietly replaces with the default.
	path := writeConfig(t, `
site:
  name: Example Blog
pagination: -5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SITECONF_TEST_GA", "UA-11146701-2")
	path := writeConfig(t, `
site:
  name: Example Blog
analytics:
  google_analytics: ${SITECONF_TEST_GA}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "UA-11146701-2", cfg.Analytics.GoogleAnalytics)
}

func TestLoadAdoptsLegacyMetadataKey(t *testing.T) {
	path := writeConfig(t, `
site:
  name: Example Blog
defaut_metadata:
  status: draft
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, cfg.DefaultMetadata.Status)
}

func TestLoadLegacyMetadataIgnoredWhenCanonicalPresent(t *testing.T) {
	path := writeConfig(t, `
site:
  name: Example Blog
default_metadata:
  status: published
defaut_metadata:
  status: draft
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, cfg.DefaultMetadata.Status)
}

func TestInitAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, Init(path, false))

	// Init refuses to overwrite without force.
	err := Init(path, false)
	require.Error(t, err)
	require.NoError(t, Init(path, true))

	first, err := Load(path)
	require.NoError(t, err)

	// Serialize the loaded record and reload it: field-for-field equality.
	copyPath := filepath.Join(dir, "copy.yaml")
	require.NoError(t, Save(first, copyPath))
	second, err := Load(copyPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestLoadDisabledFeedsStayNil(t *testing.T) {
	path := writeConfig(t, `
site:
  name: Example Blog
feeds:
  all_atom: feeds/all.atom.xml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Feeds.AllAtom)
	assert.Equal(t, "feeds/all.atom.xml", *cfg.Feeds.AllAtom)
	assert.Nil(t, cfg.Feeds.CategoryAtom)
	assert.Nil(t, cfg.Feeds.AuthorRSS)
	assert.Len(t, cfg.Feeds.Paths(), 1)
}
