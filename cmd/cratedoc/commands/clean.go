package commands

import (
	"git.home.luguber.info/inful/cratedoc/internal/docdir"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	DocDir string `name:"doc-dir" help:"Documentation output directory (overrides config)"`
	Force  bool   `short:"f" help:"Treat a missing directory as success"`
}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if c.DocDir != "" {
		cfg.DocDir = c.DocDir
	}

	cleaner := docdir.NewCleaner(cfg.DocDir)
	if c.Force {
		return cleaner.CleanIfPresent()
	}
	return cleaner.Clean()
}
