package linelog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/errs"
)

// TimestampLayout prefixes every line, in the writer's clock location.
const TimestampLayout = "2006-01-02 15:04:05"

const separator = " -> "

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Writer appends "<timestamp> -> <message>" lines to a file. Writes are
// serialized so concurrent callers never interleave partial lines.
type Writer struct {
	path  string
	clock clock.Clock
	mu    sync.Mutex
}

func NewWriter(path string, clk clock.Clock) *Writer {
	return &Writer{
		path:  path,
		clock: clk,
	}
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Append(message string) error {
	line := w.clock.Now().Format(TimestampLayout) + separator + newlines.Replace(message) + "\n"

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return errs.Wrapf(err, "linelog: create directory for %s", w.path)
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrapf(err, "linelog: open %s", w.path)
	}

	_, writeErr := f.WriteString(line)
	closeErr := f.Close()
	if writeErr != nil {
		return errs.Wrapf(writeErr, "linelog: write %s", w.path)
	}
	if closeErr != nil {
		return errs.Wrapf(closeErr, "linelog: close %s", w.path)
	}
	return nil
}
