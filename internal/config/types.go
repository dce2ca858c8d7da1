package config

import (
	"strings"

	"github.com/hatethatcode/siteconf/internal/normalization"
)

// SiteConfig is the root settings record consumed by the site generator.
// All fields are static values; nothing is computed at load time beyond
// normalization and defaulting.
type SiteConfig struct {
	Site            SiteMeta         `yaml:"site"`
	Feeds           FeedConfig       `yaml:"feeds,omitempty"`
	Analytics       AnalyticsConfig  `yaml:"analytics,omitempty"`
	Links           []Link           `yaml:"links,omitempty"`
	Social          []Link           `yaml:"social,omitempty"`
	Pagination      int              `yaml:"pagination,omitempty"`
	Theme           string           `yaml:"theme,omitempty"` // path or name of a theme bundle next to the config
	DefaultMetadata MetadataDefaults `yaml:"default_metadata,omitempty"`
}

// SiteMeta holds display metadata and locale settings for the site.
type SiteMeta struct {
	Author      string `yaml:"author"`
	Name        string `yaml:"name"`
	Subtitle    string `yaml:"subtitle,omitempty"`
	URL         string `yaml:"url,omitempty"`  // empty during local development; generator emits relative links
	Path        string `yaml:"path,omitempty"` // content directory, defaults to "content"
	Timezone    string `yaml:"timezone,omitempty"`
	DefaultLang string `yaml:"default_lang,omitempty"`
	// RelativeURLs makes the generator emit document-relative URLs. Useful when
	// previewing a build from the filesystem instead of a web server.
	RelativeURLs       bool `yaml:"relative_urls,omitempty"`
	DisplayPagesOnMenu bool `yaml:"display_pages_on_menu"`
}

// FeedConfig holds the syndication output paths. A nil field disables that
// feed entirely; this mirrors the generator's convention where an unset feed
// key means "do not generate".
type FeedConfig struct {
	AllAtom         *string `yaml:"all_atom,omitempty"`
	CategoryAtom    *string `yaml:"category_atom,omitempty"`
	TranslationAtom *string `yaml:"translation_atom,omitempty"`
	AuthorAtom      *string `yaml:"author_atom,omitempty"`
	AuthorRSS       *string `yaml:"author_rss,omitempty"`
}

// Enabled reports whether any feed output is configured.
func (f FeedConfig) Enabled() bool {
	return f.AllAtom != nil || f.CategoryAtom != nil || f.TranslationAtom != nil ||
		f.AuthorAtom != nil || f.AuthorRSS != nil
}

// Paths returns the configured feed fields keyed by their setting name, for
// validation and reporting. Nil (disabled) fields are excluded.
func (f FeedConfig) Paths() map[string]string {
	out := map[string]string{}
	add := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	add("feeds.all_atom", f.AllAtom)
	add("feeds.category_atom", f.CategoryAtom)
	add("feeds.translation_atom", f.TranslationAtom)
	add("feeds.author_atom", f.AuthorAtom)
	add("feeds.author_rss", f.AuthorRSS)
	return out
}

// AnalyticsConfig holds third-party tracking identifiers.
type AnalyticsConfig struct {
	GoogleAnalytics string `yaml:"google_analytics,omitempty"`
}

// Link is an ordered (label, URL) pair used by the navigation and social lists.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// IsPlaceholder reports whether the link is a "#" placeholder the generator
// renders as a dead anchor. Placeholders are valid config but skipped by the
// link checker.
func (l Link) IsPlaceholder() bool { return strings.TrimSpace(l.URL) == "#" }

// MetadataDefaults holds the default metadata applied to content that does
// not declare its own.
type MetadataDefaults struct {
	Status ContentStatus `yaml:"status,omitempty"`
}

// ContentStatus enumerates the content states the generator recognizes.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusHidden    ContentStatus = "hidden"
	StatusSkip      ContentStatus = "skip"
)

var contentStatusNormalizer = normalization.NewNormalizer(map[string]ContentStatus{
	"draft":     StatusDraft,
	"published": StatusPublished,
	"hidden":    StatusHidden,
	"skip":      StatusSkip,
}, "")

// NormalizeContentStatus canonicalizes user input, returning empty string for
// unknown values so callers can branch safely.
func NormalizeContentStatus(raw string) ContentStatus {
	return contentStatusNormalizer.Normalize(raw)
}

// ValidContentStatuses returns the recognized status values for error messages.
func ValidContentStatuses() []string { return contentStatusNormalizer.ValidKeys() }
