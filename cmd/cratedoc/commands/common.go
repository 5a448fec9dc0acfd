package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/cratedoc/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags. `build` is the default command so a bare
// `cratedoc` run reproduces the historical build script.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"cratedoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Clean the output directory and run the documentation generator"`
	Clean CleanCmd `cmd:"" help:"Remove the documentation output directory"`
	Check CheckCmd `cmd:"" help:"Validate the HTML header injection file"`
	Watch WatchCmd `cmd:"" help:"Rebuild documentation when crate sources change"`
	Init  InitCmd  `cmd:"" help:"Write a starter configuration and header file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the log level from the verbose flag and the
// CRATEDOC_LOG_LEVEL environment variable (flag wins).
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("CRATEDOC_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig loads the config file named by the root -c flag.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}
