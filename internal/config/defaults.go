package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *SiteConfig) error
	Domain() string
}

// SiteDefaultApplier handles site metadata defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.Site.Path == "" {
		cfg.Site.Path = "content"
	}
	if cfg.Site.Timezone == "" {
		cfg.Site.Timezone = "UTC"
	}
	if cfg.Site.DefaultLang == "" {
		cfg.Site.DefaultLang = "en"
	}
	// DisplayPagesOnMenu stays false unless set: the generator's menu only
	// lists categories by default.
	return nil
}

// PaginationDefaultApplier handles pagination defaults.
type PaginationDefaultApplier struct{}

func (p *PaginationDefaultApplier) Domain() string { return "pagination" }

func (p *PaginationDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.Pagination == 0 {
		cfg.Pagination = 10
	}
	return nil
}

// MetadataDefaultApplier handles default content metadata.
type MetadataDefaultApplier struct{}

func (m *MetadataDefaultApplier) Domain() string { return "default_metadata" }

func (m *MetadataDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.DefaultMetadata.Status == "" {
		// New content stays out of the published site until promoted.
		cfg.DefaultMetadata.Status = StatusDraft
	}
	return nil
}

// CompositeDefaultApplier runs all domain appliers in a fixed order.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates the composite applier covering every domain.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			&SiteDefaultApplier{},
			&PaginationDefaultApplier{},
			&MetadataDefaultApplier{},
		},
	}
}

// ApplyDefaults applies each domain's defaults, stopping at the first error.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

func applyDefaults(cfg *SiteConfig) error {
	return NewDefaultApplier().ApplyDefaults(cfg)
}
