package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/content"
	"github.com/hatethatcode/siteconf/internal/linkcheck"
)

// CheckLinksCmd implements the 'check-links' command.
type CheckLinksCmd struct {
	Content    string        `help:"Also check external links found in this content directory"`
	Timeout    time.Duration `help:"Per-request timeout" default:"10s"`
	Concurrent int           `help:"Maximum concurrent requests" default:"10"`
	NATSURL    string        `name:"nats-url" help:"NATS server URL for result caching and broken link events"`
}

func (c *CheckLinksCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	targets := linkcheck.TargetsFromConfig(cfg)
	if c.Content != "" {
		result, serr := content.Scan(c.Content)
		if serr != nil {
			return serr
		}
		urls, lerr := content.ExtractExternalLinks(result)
		if lerr != nil {
			return lerr
		}
		for _, u := range urls {
			targets = append(targets, linkcheck.Target{URL: u, Source: "content"})
		}
	}
	if len(targets) == 0 {
		fmt.Println("no links to check")
		return nil
	}

	service, err := linkcheck.NewService(linkcheck.Options{
		MaxConcurrent:  c.Concurrent,
		RequestTimeout: c.Timeout,
		NATSURL:        c.NATSURL,
	})
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	results, err := service.Check(context.Background(), targets)
	if err != nil {
		return err
	}

	broken := 0
	for _, r := range results {
		mark := "ok"
		if !r.OK {
			mark = "broken"
			broken++
		}
		cached := ""
		if r.Cached {
			cached = " (cached)"
		}
		detail := fmt.Sprintf("%d", r.StatusCode)
		if r.Error != "" {
			detail = r.Error
		}
		fmt.Printf("%-6s %s [%s] %s%s\n", mark, r.Target.URL, r.Target.Source, detail, cached)
	}
	fmt.Printf("checked %d link(s), %d broken\n", len(results), broken)
	if broken > 0 {
		return fmt.Errorf("%d broken link(s)", broken)
	}
	return nil
}
