package config

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of generator-affecting normalized
// configuration fields. Link lists are order-insensitive (sorted prior to
// hashing) so reordering navigation entries does not register as a content
// change. Callers SHOULD run NormalizeConfig + applyDefaults before computing
// a snapshot to ensure canonical field values.
func (c *SiteConfig) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}

	w("site.author", c.Site.Author)
	w("site.name", c.Site.Name)
	w("site.subtitle", c.Site.Subtitle)
	w("site.url", c.Site.URL)
	w("site.path", c.Site.Path)
	w("site.timezone", c.Site.Timezone)
	w("site.default_lang", c.Site.DefaultLang)
	w("site.relative_urls", strconv.FormatBool(c.Site.RelativeURLs))
	w("site.display_pages_on_menu", strconv.FormatBool(c.Site.DisplayPagesOnMenu))

	feeds := c.Feeds.Paths()
	keys := make([]string, 0, len(feeds))
	for k := range feeds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w(k, feeds[k])
	}

	w("analytics.google_analytics", c.Analytics.GoogleAnalytics)
	w("links", joinLinks(c.Links))
	w("social", joinLinks(c.Social))
	w("pagination", strconv.Itoa(c.Pagination))
	w("theme", c.Theme)
	w("default_metadata.status", string(c.DefaultMetadata.Status))

	return hex.EncodeToString(h.Sum(nil))
}

func joinLinks(links []Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, l.Label+"|"+l.URL)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
