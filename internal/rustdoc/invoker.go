// Package rustdoc invokes the external documentation generator with the
// header-injection flag set in a copy of the parent environment.
package rustdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/cratedoc/internal/config"
	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
)

// Invoker runs the documentation generator synchronously.
type Invoker struct {
	cfg *config.Config

	// dir is the working directory for the generator; empty means inherit.
	dir string
	// stdout/stderr default to the parent's streams.
	stdout io.Writer
	stderr io.Writer
}

// NewInvoker creates an invoker for the given configuration.
func NewInvoker(cfg *config.Config) *Invoker {
	return &Invoker{
		cfg:    cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithDir sets the working directory for the generator process.
func (i *Invoker) WithDir(dir string) *Invoker {
	i.dir = dir
	return i
}

// WithOutput redirects the generator's stdout and stderr (for testing).
func (i *Invoker) WithOutput(stdout, stderr io.Writer) *Invoker {
	i.stdout = stdout
	i.stderr = stderr
	return i
}

// Env returns the environment passed to the generator: the parent environment
// duplicated, with exactly one variable set to the header-injection flag.
func (i *Invoker) Env() []string {
	return append(os.Environ(), fmt.Sprintf("%s=%s", i.cfg.FlagsVar, i.cfg.HeaderFlag()))
}

// Run executes the generator and waits for it to finish. A non-zero exit is
// returned as a tool error carrying the exit code; there is no retry.
func (i *Invoker) Run(ctx context.Context) (*Report, error) {
	if _, err := exec.LookPath(i.cfg.Tool); err != nil {
		return nil, cderrors.ToolNotFound(i.cfg.Tool, err)
	}

	report := &Report{
		BuildID: uuid.NewString(),
		Tool:    i.cfg.Tool,
		Args:    i.cfg.ToolArgs(),
	}

	cmd := exec.CommandContext(ctx, i.cfg.Tool, report.Args...)
	cmd.Dir = i.dir
	cmd.Env = i.Env()
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	slog.Info("Running documentation generator",
		logfields.BuildID(report.BuildID),
		logfields.Tool(i.cfg.Tool),
		slog.Any("args", report.Args),
		slog.String(i.cfg.FlagsVar, i.cfg.HeaderFlag()))

	start := time.Now()
	err := cmd.Run()
	report.Duration = time.Since(start)

	if err != nil {
		report.ExitCode = exitCodeOf(err)
		slog.Error("Documentation generator failed",
			logfields.BuildID(report.BuildID),
			logfields.ExitCode(report.ExitCode),
			logfields.Error(err))
		return report, cderrors.ToolFailed(i.cfg.Tool, report.ExitCode, err)
	}

	slog.Info("Documentation generated",
		logfields.BuildID(report.BuildID),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

// exitCodeOf extracts the subprocess exit code, or -1 when the process never
// ran or was killed by a signal.
func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
