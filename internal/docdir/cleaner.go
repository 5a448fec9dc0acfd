// Package docdir manages the documentation output tree.
//
// The generator recreates the tree on every run, so the cleaner removes it
// wholesale rather than pruning stale entries. A missing tree is an error for
// the default clean; it usually means the command is running outside the
// crate root, and the error surfaces before the generator starts.
package docdir

import (
	"fmt"
	"log/slog"
	"os"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
)

// Cleaner removes the documentation output directory.
type Cleaner struct {
	path string
}

// NewCleaner creates a cleaner for the given output directory.
func NewCleaner(path string) *Cleaner {
	return &Cleaner{path: path}
}

// Path returns the directory this cleaner operates on.
func (c *Cleaner) Path() string {
	return c.path
}

// Clean removes the output directory recursively. The directory must exist;
// see CleanIfPresent for the forced variant.
func (c *Cleaner) Clean() error {
	info, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cderrors.DocDirMissing(c.path)
		}
		return cderrors.CleanFailed(c.path, err)
	}
	if !info.IsDir() {
		return cderrors.CleanFailed(c.path, fmt.Errorf("not a directory"))
	}

	if err := os.RemoveAll(c.path); err != nil {
		return cderrors.CleanFailed(c.path, err)
	}

	slog.Info("Removed documentation directory", logfields.Path(c.path))
	return nil
}

// CleanIfPresent removes the output directory when it exists and treats a
// missing directory as success. Used by watch rebuilds, where the first
// iteration may start from a clean tree.
func (c *Cleaner) CleanIfPresent() error {
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		slog.Debug("Documentation directory already absent", logfields.Path(c.path))
		return nil
	}
	return c.Clean()
}
