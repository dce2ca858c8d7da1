package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// legacyMetadataKey is the misspelled default-metadata key found in older
// configurations. The generator would silently ignore it; we adopt the value
// and warn so the defect is visible instead of lost.
const legacyMetadataKey = "defaut_metadata"

// Load reads, normalizes, defaults and validates a site configuration file.
func Load(configPath string) (*SiteConfig, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Probe the raw document for the legacy misspelled metadata key before
	// the normalization pass so its warning is reported alongside the others.
	legacy, legacyFound := probeLegacyMetadata([]byte(expanded))

	nres, nerr := NormalizeConfig(&cfg)
	if nerr != nil {
		return nil, fmt.Errorf("normalize: %w", nerr)
	}
	if legacyFound {
		if cfg.DefaultMetadata == (MetadataDefaults{}) {
			cfg.DefaultMetadata = legacy
			nres.Warnings = append(nres.Warnings,
				fmt.Sprintf("found misspelled key '%s', adopting its value as default_metadata", legacyMetadataKey))
		} else {
			nres.Warnings = append(nres.Warnings,
				fmt.Sprintf("found misspelled key '%s', ignored because default_metadata is set", legacyMetadataKey))
		}
	}
	for _, w := range nres.Warnings {
		fmt.Fprintf(os.Stderr, "config normalization: %s\n", w)
	}

	// Apply defaults after normalization so canonical values drive defaults.
	if err := applyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Save serializes the configuration back to disk. Reloading a saved file
// yields a field-for-field identical record.
func Save(cfg *SiteConfig, configPath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	feedAll := "feeds/all.atom.xml"
	example := SiteConfig{
		Site: SiteMeta{
			Author:      "Site Author",
			Name:        "My Site",
			Subtitle:    "a static blog",
			URL:         "", // keep empty while developing; set for production builds
			Path:        "content",
			Timezone:    "Europe/Madrid",
			DefaultLang: "en",
		},
		Feeds: FeedConfig{
			AllAtom: &feedAll,
		},
		Links: []Link{
			{Label: "Pelican", URL: "https://getpelican.com/"},
			{Label: "Python.org", URL: "https://python.org/"},
		},
		Social: []Link{
			{Label: "Add your social links here", URL: "#"},
		},
		Pagination: 10,
		Theme:      "themes/default",
		DefaultMetadata: MetadataDefaults{
			Status: StatusDraft,
		},
	}

	if err := Save(&example, configPath); err != nil {
		return err
	}
	return nil
}

// probeLegacyMetadata checks the raw document for the misspelled metadata key
// and decodes its value when present.
func probeLegacyMetadata(data []byte) (MetadataDefaults, bool) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return MetadataDefaults{}, false
	}
	node, ok := raw[legacyMetadataKey]
	if !ok {
		return MetadataDefaults{}, false
	}
	var md MetadataDefaults
	if err := node.Decode(&md); err != nil {
		return MetadataDefaults{}, true
	}
	return md, true
}

// loadEnvFiles loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten; a missing file
// is not an error.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Note: %s could not be loaded: %v\n", envPath, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
		return
	}
}
