package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"wordfreq/internal/services"
)

const component = "wordlist"

// Writer appends tokens to a word-list file.
type Writer struct {
	path   string
	file   *os.File
	buf    *bufio.Writer
	lock   *flock.Flock
	lines  int
	closed bool
}

// Create truncates or creates the word-list file at path and returns a writer
// holding an exclusive lock on it. The file is only truncated once the lock
// is held.
func Create(path string) (*Writer, error) {
	lock := flock.New(path, flock.SetFlag(os.O_CREATE|os.O_WRONLY), flock.SetPermissions(0o644))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrIO, component, "lock", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, component, "lock", fmt.Sprintf("%s is in use by another process", path), nil)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrIO, component, "create", path, err)
	}

	return &Writer{
		path: path,
		file: file,
		buf:  bufio.NewWriterSize(file, 64*1024),
		lock: lock,
	}, nil
}

// Write emits token as its own line.
func (w *Writer) Write(token string) error {
	if w.closed {
		return services.Wrap(services.ErrIO, component, "write", w.path, os.ErrClosed)
	}
	if strings.ContainsRune(token, '\n') {
		return services.Wrap(services.ErrValidation, component, "write", fmt.Sprintf("token %q contains a newline", token), nil)
	}
	if _, err := w.buf.WriteString(token); err != nil {
		return services.Wrap(services.ErrIO, component, "write", w.path, err)
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return services.Wrap(services.ErrIO, component, "write", w.path, err)
	}
	w.lines++
	return nil
}

// Lines returns the number of tokens written so far.
func (w *Writer) Lines() int {
	return w.lines
}

// Close flushes buffered tokens, closes the file, and releases the lock.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	if err := w.buf.Flush(); err != nil {
		errs = append(errs, err)
	}
	if err := w.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := w.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("release lock: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return services.Wrap(services.ErrIO, component, "close", w.path, err)
	}
	return nil
}
