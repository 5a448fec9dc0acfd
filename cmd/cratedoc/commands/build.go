package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/cratedoc/internal/config"
	"git.home.luguber.info/inful/cratedoc/internal/docdir"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
	"git.home.luguber.info/inful/cratedoc/internal/rustdoc"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	DocDir string   `name:"doc-dir" help:"Documentation output directory (overrides config)"`
	Header string   `help:"HTML header injection file (overrides config)"`
	Keep   bool     `help:"Skip removing the output directory before building"`
	Arg    []string `name:"arg" help:"Extra argument passed to the generator (repeatable)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	b.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return RunBuild(context.Background(), cfg, b.Keep)
}

// applyOverrides applies CLI flags on top of the loaded configuration.
func (b *BuildCmd) applyOverrides(cfg *config.Config) {
	if b.DocDir != "" {
		cfg.DocDir = b.DocDir
	}
	if b.Header != "" {
		cfg.Header = b.Header
	}
	if len(b.Arg) > 0 {
		cfg.ExtraArgs = append(cfg.ExtraArgs, b.Arg...)
	}
}

// RunBuild executes one full documentation build: remove the previous output
// tree, then run the generator with the header-injection flag. The clean step
// runs strictly first; if it fails the generator is never started.
func RunBuild(ctx context.Context, cfg *config.Config, keep bool) error {
	slog.Info("Starting documentation build",
		logfields.DocDir(cfg.DocDir),
		logfields.Header(cfg.Header),
		logfields.Tool(cfg.Tool))

	if keep {
		slog.Info("Keeping existing documentation directory", logfields.DocDir(cfg.DocDir))
	} else {
		if err := docdir.NewCleaner(cfg.DocDir).Clean(); err != nil {
			return err
		}
	}

	report, err := rustdoc.NewInvoker(cfg).Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("Documentation build finished",
		logfields.BuildID(report.BuildID),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return nil
}
