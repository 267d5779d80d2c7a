package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"flutter-setup/internal/logger"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Writer performs every filesystem mutation the tool makes. It wraps a
// billy.Filesystem so tests run against an in-memory tree, and it owns the
// dry-run guard: with DryRun set, mutations print what they would do and
// reads keep working against the real tree.
type Writer struct {
	FS     billy.Filesystem
	DryRun bool
}

// NewWriter returns a Writer over the host filesystem.
func NewWriter(dryRun bool) *Writer {
	return &Writer{FS: osfs.New("/"), DryRun: dryRun}
}

// WriteFile writes data to path, creating parent directories as needed.
// Existing files are overwritten.
func (w *Writer) WriteFile(path string, data []byte) error {
	if w.DryRun {
		logger.Dry("[DRY-RUN] write %s (%d bytes)\n", path, len(data))
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := w.FS.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(w.FS, path, data, 0o644)
}

// MkdirAll creates the directory path together with any missing parents.
func (w *Writer) MkdirAll(path string) error {
	if w.DryRun {
		logger.Dry("[DRY-RUN] mkdir -p %s\n", path)
		return nil
	}
	return w.FS.MkdirAll(path, 0o755)
}

// RemoveAll deletes path and everything under it.
func (w *Writer) RemoveAll(path string) error {
	if w.DryRun {
		logger.Dry("[DRY-RUN] rm -rf %s\n", path)
		return nil
	}
	return util.RemoveAll(w.FS, path)
}

// Exists reports whether path names an existing file or directory.
func (w *Writer) Exists(path string) bool {
	_, err := w.FS.Stat(path)
	return err == nil
}

// ReadFile returns the contents of path.
func (w *Writer) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(w.FS, path)
}

// EnsureLine appends line to the file at path unless one of the file's lines
// already equals it. A missing file is created. The returned bool reports
// whether the line was absent, in dry-run mode too, so callers can log the
// same message either way.
func (w *Writer) EnsureLine(path, line string) (bool, error) {
	content, err := w.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	for _, existing := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(existing) == line {
			return false, nil
		}
	}

	if w.DryRun {
		logger.Dry("[DRY-RUN] append to %s: %s\n", path, line)
		return true, nil
	}

	updated := string(content)
	if updated != "" && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += line + "\n"
	return true, w.WriteFile(path, []byte(updated))
}
