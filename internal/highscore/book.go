package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Book is a score table backed by a file. It is safe for concurrent use so
// SSH sessions can share one.
//
// Persistence is best-effort: failures are logged and the in-memory table
// stays authoritative for the process lifetime.
type Book struct {
	mu     sync.Mutex
	path   string
	table  Table
	logger *log.Logger
}

// Open loads the table at path. A missing or unreadable file degrades to
// the default table. An empty path keeps the book in memory only.
func Open(path string, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Book{path: path, table: Default(), logger: logger}
	if path == "" {
		return b
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no score file yet", "path", path)
		return b
	case err != nil:
		logger.Warn("cannot read score file, using defaults", "path", path, "err", err)
		return b
	}

	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		logger.Warn("cannot parse score file, using defaults", "path", path, "err", err)
		return b
	}
	b.table = t
	logger.Debug("score file loaded", "path", path)
	return b
}

// NewMemory returns a book that never touches the disk.
func NewMemory() *Book {
	return Open("", nil)
}

// Path returns the backing file, or "" for an in-memory book.
func (b *Book) Path() string {
	return b.path
}

// Table returns a copy of the current table.
func (b *Book) Table() Table {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table
}

// Qualifies reports whether score would enter the table.
func (b *Book) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table.Qualifies(score)
}

// Submit inserts the entry and persists the table. It returns the rank or -1.
func (b *Book) Submit(name string, score int) int {
	b.mu.Lock()
	rank := b.table.Insert(name, score)
	t := b.table
	b.mu.Unlock()

	if rank < 0 {
		return rank
	}
	if err := b.write(t); err != nil {
		b.logger.Warn("cannot save score file", "path", b.path, "err", err)
	}
	return rank
}

// Save writes the current table to disk.
func (b *Book) Save() error {
	return b.write(b.Table())
}

// write replaces the file atomically through a temp file in the same dir.
func (b *Book) write(t Table) error {
	if b.path == "" {
		return nil
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*")
	if err != nil {
		return fmt.Errorf("highscore: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := t.Format(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("highscore: replace %s: %w", b.path, err)
	}
	return nil
}
