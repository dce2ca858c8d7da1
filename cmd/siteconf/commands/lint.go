package commands

import (
	"fmt"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/content"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Content string `help:"Content directory (defaults to the configured site path)"`
}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := l.Content
	if dir == "" {
		dir = contentDir(cfg, root.Config)
	}

	result, err := content.Scan(dir)
	if err != nil {
		return err
	}
	issues := append(result.Issues, content.Lint(result)...)

	fmt.Printf("scanned %d page(s)\n", len(result.Pages))
	if len(issues) == 0 {
		fmt.Println("no issues found")
		return nil
	}
	for _, issue := range issues {
		fmt.Println(issue)
	}
	return fmt.Errorf("found %d issue(s)", len(issues))
}
