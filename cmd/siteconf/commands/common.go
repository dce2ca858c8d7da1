package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/hatethatcode/siteconf/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"siteconf.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
	Validate   ValidateCmd   `cmd:"" help:"Validate the configuration file"`
	Show       ShowCmd       `cmd:"" help:"Show the effective configuration after defaults and normalization"`
	Doctor     DoctorCmd     `cmd:"" help:"Diagnose configuration and site layout problems"`
	Lint       LintCmd       `cmd:"" help:"Lint content files for metadata and markdown problems"`
	CheckLinks CheckLinksCmd `cmd:"" name:"check-links" help:"Verify configured and content links"`
	Theme      ThemeCmd      `cmd:"" help:"Manage theme bundles"`
	History    HistoryCmd    `cmd:"" help:"Show recorded configuration events"`
	Watch      WatchCmd      `cmd:"" help:"Watch the configuration file and reload on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// contentDir resolves the configured content directory relative to the
// configuration file.
func contentDir(cfg *config.SiteConfig, configPath string) string {
	dir := cfg.Site.Path
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(configPath), dir)
	}
	return dir
}
