package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/theme"
)

// ThemeCmd groups the theme subcommands.
type ThemeCmd struct {
	List    ThemeListCmd    `cmd:"" help:"List installed theme bundles"`
	Install ThemeInstallCmd `cmd:"" help:"Install a theme bundle from a git repository"`
}

// ThemeListCmd lists the theme bundles next to the configuration file.
type ThemeListCmd struct {
	Dir string `short:"d" help:"Themes directory" default:"themes"`
}

func (t *ThemeListCmd) Run(_ *Global, root *CLI) error {
	dir := t.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(root.Config), dir)
	}
	names, err := theme.List(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no themes installed")
		return nil
	}
	cfg, cfgErr := config.Load(root.Config)
	for _, name := range names {
		active := ""
		if cfgErr == nil && filepath.Base(cfg.Theme) == name {
			active = " (active)"
		}
		fmt.Printf("%s%s\n", name, active)
	}
	return nil
}

// ThemeInstallCmd clones a theme repository into the themes directory.
type ThemeInstallCmd struct {
	URL  string `arg:"" help:"Git URL of the theme repository"`
	Name string `help:"Directory name for the theme (derived from the URL when omitted)"`
	Dir  string `short:"d" help:"Themes directory" default:"themes"`
}

func (t *ThemeInstallCmd) Run(_ *Global, root *CLI) error {
	dir := t.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(root.Config), dir)
	}
	path, err := theme.Install(context.Background(), t.URL, dir, t.Name)
	if err != nil {
		return err
	}
	fmt.Printf("installed theme at %s\n", path)
	fmt.Printf("set 'theme: %s' in %s to activate it\n",
		filepath.Join(t.Dir, filepath.Base(path)), root.Config)
	return nil
}
