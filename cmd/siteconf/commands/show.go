package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hatethatcode/siteconf/internal/config"
)

// ShowCmd implements the 'show' command. It prints the configuration as the
// generator will see it, after environment expansion, normalization and
// defaulting.
type ShowCmd struct{}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	fmt.Printf("# snapshot: %s\n", cfg.Snapshot())
	return nil
}
