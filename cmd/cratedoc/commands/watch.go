package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/cratedoc/internal/config"
	"git.home.luguber.info/inful/cratedoc/internal/docdir"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
	"git.home.luguber.info/inful/cratedoc/internal/rustdoc"
	"git.home.luguber.info/inful/cratedoc/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	DocDir string   `name:"doc-dir" help:"Documentation output directory (overrides config)"`
	Header string   `help:"HTML header injection file (overrides config)"`
	Path   []string `help:"Directory to watch (repeatable, overrides config)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if w.DocDir != "" {
		cfg.DocDir = w.DocDir
	}
	if w.Header != "" {
		cfg.Header = w.Header
	}
	if len(w.Path) > 0 {
		cfg.Watch.Paths = w.Path
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build once up front so the docs exist before the first change arrives.
	// Watch rebuilds tolerate a missing output tree: the previous iteration
	// may have failed between clean and generate.
	if err := rebuild(ctx, cfg); err != nil {
		slog.Error("Initial build failed, watching anyway", logfields.Error(err))
	}

	watcher, err := watch.New(cfg.Watch.Paths, cfg.DebounceDuration(), func(ctx context.Context) error {
		return rebuild(ctx, cfg)
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

// rebuild is one watch-triggered build cycle.
func rebuild(ctx context.Context, cfg *config.Config) error {
	if err := docdir.NewCleaner(cfg.DocDir).CleanIfPresent(); err != nil {
		return err
	}
	_, err := rustdoc.NewInvoker(cfg).Run(ctx)
	return err
}
