package commands

import (
	"fmt"
	"log/slog"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
	"git.home.luguber.info/inful/cratedoc/internal/header"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Header string `help:"HTML header injection file (overrides config)"`
	Strict bool   `help:"Treat warnings as errors"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if c.Header != "" {
		cfg.Header = c.Header
	}

	result, err := header.Check(cfg.Header)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		slog.Warn(warning, logfields.Header(cfg.Header))
	}
	if c.Strict && len(result.Warnings) > 0 {
		return cderrors.ValidationFailed("header", fmt.Sprintf("%d warning(s) with --strict", len(result.Warnings)))
	}

	slog.Info("Header file OK",
		logfields.Header(cfg.Header),
		slog.Int("scripts", result.Elements["script"]),
		slog.Int("links", result.Elements["link"]),
		slog.Int("styles", result.Elements["style"]))
	return nil
}
