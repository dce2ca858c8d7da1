package commands

import (
	"fmt"

	"github.com/hatethatcode/siteconf/internal/config"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}
	fmt.Printf("%s is valid\n", root.Config)
	fmt.Printf("snapshot: %s\n", cfg.Snapshot())
	return nil
}
