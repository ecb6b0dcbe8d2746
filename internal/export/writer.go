package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/kingrea/hirekit/internal/position"
)

// Writer saves rendered documents into a directory. It stands in for a
// browser download.
type Writer struct {
	dir string
}

// NewWriter returns a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the export directory.
func (w *Writer) Dir() string { return w.dir }

// Write renders p in format and stores it, returning the written path. An
// existing file with the same name is overwritten.
func (w *Writer) Write(p position.Position, format Format) (string, error) {
	data, err := Render(p, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "export: ensure export dir")
	}
	path := filepath.Join(w.dir, safeFileName(FileName(p, format)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "export: write %s", path)
	}
	return path, nil
}

// safeFileName keeps a title from escaping the export directory.
func safeFileName(name string) string {
	return strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(name)
}
