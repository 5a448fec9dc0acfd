package docdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
)

func makeDocTree(t *testing.T) string {
	t.Helper()
	docDir := filepath.Join(t.TempDir(), "target", "doc")
	if err := os.MkdirAll(filepath.Join(docDir, "my_crate"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(docDir, "my_crate", "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return docDir
}

func TestCleanRemovesTree(t *testing.T) {
	docDir := makeDocTree(t)

	cleaner := NewCleaner(docDir)
	if err := cleaner.Clean(); err != nil {
		t.Fatalf("Clean() failed: %v", err)
	}

	if _, err := os.Stat(docDir); !os.IsNotExist(err) {
		t.Errorf("expected %s to be gone, stat err: %v", docDir, err)
	}
}

func TestCleanFailsOnMissingDir(t *testing.T) {
	cleaner := NewCleaner(filepath.Join(t.TempDir(), "target", "doc"))

	err := cleaner.Clean()
	if err == nil {
		t.Fatal("Clean() should fail when the directory does not exist")
	}

	var ce *cderrors.CratedocError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CratedocError, got %T", err)
	}
	if ce.Category != cderrors.CategoryFileSystem {
		t.Errorf("expected filesystem category, got %s", ce.Category)
	}
}

func TestCleanFailsOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := NewCleaner(path).Clean(); err == nil {
		t.Error("Clean() should refuse to remove a plain file")
	}
}

func TestCleanIfPresent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "target", "doc")
	if err := NewCleaner(missing).CleanIfPresent(); err != nil {
		t.Errorf("CleanIfPresent() on missing dir should succeed, got %v", err)
	}

	docDir := makeDocTree(t)
	if err := NewCleaner(docDir).CleanIfPresent(); err != nil {
		t.Fatalf("CleanIfPresent() failed: %v", err)
	}
	if _, err := os.Stat(docDir); !os.IsNotExist(err) {
		t.Errorf("expected %s to be gone, stat err: %v", docDir, err)
	}
}
