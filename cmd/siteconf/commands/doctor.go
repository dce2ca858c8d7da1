package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/theme"
)

// DoctorCmd implements the 'doctor' command: checks that go beyond schema
// validation, against the filesystem the generator will actually run in.
type DoctorCmd struct{}

// Known Google Analytics identifier shapes: legacy UA properties and GA4
// measurement IDs.
var analyticsIDPattern = regexp.MustCompile(`^(UA-\d+-\d+|G-[A-Z0-9]+)$`)

func (d *DoctorCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	baseDir := filepath.Dir(root.Config)
	var problems []string
	warn := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if cfg.Theme != "" {
		if _, terr := theme.Resolve(cfg, baseDir); terr != nil {
			warn("theme: %v", terr)
		}
	} else {
		fmt.Println("theme: none configured, generator default will be used")
	}

	dir := contentDir(cfg, root.Config)
	if info, serr := os.Stat(dir); os.IsNotExist(serr) {
		warn("content: directory does not exist: %s", dir)
	} else if serr != nil {
		warn("content: %v", serr)
	} else if !info.IsDir() {
		warn("content: path is not a directory: %s", dir)
	}

	if id := cfg.Analytics.GoogleAnalytics; id != "" && !analyticsIDPattern.MatchString(id) {
		warn("analytics: %q does not look like a Google Analytics ID", id)
	}

	placeholders := 0
	for _, l := range append(append([]config.Link{}, cfg.Links...), cfg.Social...) {
		if l.IsPlaceholder() {
			placeholders++
		}
	}
	if placeholders > 0 {
		fmt.Printf("links: %d placeholder entries render as dead anchors\n", placeholders)
	}

	if !cfg.Feeds.Enabled() {
		fmt.Println("feeds: disabled, no syndication output will be generated")
	}

	if len(problems) == 0 {
		fmt.Println("no problems found")
		return nil
	}
	for _, p := range problems {
		fmt.Println(p)
	}
	return fmt.Errorf("found %d problem(s)", len(problems))
}
