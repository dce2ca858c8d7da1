package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *SiteConfig) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *SiteConfig
}

func newConfigurationValidator(config *SiteConfig) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateSite(); err != nil {
		return err
	}
	if err := cv.validateLinkList("links", cv.config.Links); err != nil {
		return err
	}
	if err := cv.validateLinkList("social", cv.config.Social); err != nil {
		return err
	}
	if err := cv.validatePagination(); err != nil {
		return err
	}
	if err := cv.validateFeeds(); err != nil {
		return err
	}
	return cv.validateMetadata()
}

func (cv *configurationValidator) validateSite() error {
	site := cv.config.Site
	if site.Name == "" {
		return errors.New("site.name cannot be empty")
	}

	// An empty URL is valid: the generator produces relative links for local
	// development. A configured URL must be an absolute http(s) URL.
	if site.URL != "" {
		u, err := url.Parse(site.URL)
		if err != nil {
			return fmt.Errorf("invalid site.url %q: %w", site.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("site.url must use http or https, got %q", site.URL)
		}
		if u.Host == "" {
			return fmt.Errorf("site.url must include a host: %q", site.URL)
		}
	}

	if site.Timezone != "" {
		if _, err := time.LoadLocation(site.Timezone); err != nil {
			return fmt.Errorf("invalid site.timezone %q: %w", site.Timezone, err)
		}
	}

	if site.DefaultLang != "" {
		if _, err := language.Parse(site.DefaultLang); err != nil {
			return fmt.Errorf("invalid site.default_lang %q: %w", site.DefaultLang, err)
		}
	}

	return nil
}

// validateLinkList checks that each entry is a complete (label, URL) pair.
func (cv *configurationValidator) validateLinkList(field string, links []Link) error {
	for i, l := range links {
		if strings.TrimSpace(l.Label) == "" {
			return fmt.Errorf("%s[%d]: label cannot be empty", field, i)
		}
		if strings.TrimSpace(l.URL) == "" {
			return fmt.Errorf("%s[%d] (%s): url cannot be empty", field, i, l.Label)
		}
		if l.IsPlaceholder() {
			continue
		}
		if _, err := url.Parse(l.URL); err != nil {
			return fmt.Errorf("%s[%d] (%s): invalid url %q: %w", field, i, l.Label, l.URL, err)
		}
	}
	return nil
}

func (cv *configurationValidator) validatePagination() error {
	if cv.config.Pagination <= 0 {
		return fmt.Errorf("pagination must be a positive integer, got %d", cv.config.Pagination)
	}
	return nil
}

// validateFeeds checks every configured feed field holds a relative output
// path. Absent fields disable the feed and are always valid.
func (cv *configurationValidator) validateFeeds() error {
	for field, path := range cv.config.Feeds.Paths() {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%s: feed path cannot be empty (omit the key to disable the feed)", field)
		}
		if strings.Contains(path, "://") {
			return fmt.Errorf("%s: feed path must be relative to the output root, got %q", field, path)
		}
		if strings.HasPrefix(path, "/") {
			return fmt.Errorf("%s: feed path must not be absolute, got %q", field, path)
		}
	}
	return nil
}

func (cv *configurationValidator) validateMetadata() error {
	status := cv.config.DefaultMetadata.Status
	if status == "" {
		return nil
	}
	if NormalizeContentStatus(string(status)) == "" {
		return fmt.Errorf("invalid default_metadata.status %q (allowed: %s)",
			status, strings.Join(ValidContentStatuses(), "|"))
	}
	return nil
}
