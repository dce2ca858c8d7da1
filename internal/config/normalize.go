package config

import (
	"fmt"
	"strings"
)

// NormalizationResult captures adjustments & warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig performs canonicalization on enumerated and bounded fields
// prior to default application. It mutates the provided config in-place and
// returns a result describing any coercions.
func NormalizeConfig(c *SiteConfig) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeSite(&c.Site, res)
	normalizeMetadata(&c.DefaultMetadata, res)
	// Negative pagination is left alone so validation rejects it instead of
	// a warning silently turning it into the default.
	c.Theme = strings.TrimSpace(c.Theme)
	return res, nil
}

func normalizeSite(s *SiteMeta, res *NormalizationResult) {
	if lang := strings.ToLower(strings.TrimSpace(s.DefaultLang)); lang != s.DefaultLang {
		if strings.TrimSpace(s.DefaultLang) != "" {
			res.Warnings = append(res.Warnings, warnChanged("site.default_lang", s.DefaultLang, lang))
		}
		s.DefaultLang = lang
	}
	s.Timezone = strings.TrimSpace(s.Timezone)
	s.URL = strings.TrimRight(strings.TrimSpace(s.URL), "/")
}

func normalizeMetadata(m *MetadataDefaults, res *NormalizationResult) {
	if m.Status == "" {
		return
	}
	if st := NormalizeContentStatus(string(m.Status)); st != "" {
		if m.Status != st {
			res.Warnings = append(res.Warnings, warnChanged("default_metadata.status", m.Status, st))
			m.Status = st
		}
	}
	// Unknown statuses are preserved so validation can raise an error.
}

func warnChanged(field string, from, to interface{}) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
