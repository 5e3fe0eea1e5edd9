package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"wordfreq/internal/services"
)

// Reader iterates over the lines of a word-list file.
type Reader struct {
	path   string
	file   *os.File
	buf    *bufio.Reader
	lock   *flock.Flock
	lines  int
	err    error
	closed bool
}

// Open opens the word-list file at path for reading under a shared lock on
// the file itself. When the filesystem refuses the lock the file is read
// without locking.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, component, "open", path, err)
		}
		return nil, services.Wrap(services.ErrIO, component, "open", path, err)
	}

	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	ok, err := lock.TryRLock()
	switch {
	case err != nil:
		lock = nil
	case !ok:
		_ = file.Close()
		return nil, services.Wrap(services.ErrLocked, component, "lock", fmt.Sprintf("%s is being written by another process", path), nil)
	}

	return &Reader{path: path, file: file, buf: bufio.NewReaderSize(file, 64*1024), lock: lock}, nil
}

// Lines yields each line exactly as stored, without its terminating '\n'.
// Lines have no length limit; carriage returns stay part of the line. A final
// line without a newline is still yielded. Iteration stops at the first read
// error, which Err reports.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.err == nil {
			line, err := r.buf.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				r.err = err
				return
			}
			if len(line) > 0 {
				r.lines++
				if !yield(strings.TrimSuffix(line, "\n")) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// Count returns the number of lines read so far.
func (r *Reader) Count() int {
	return r.lines
}

// Err returns the first non-EOF error encountered while reading.
func (r *Reader) Err() error {
	if r.err != nil {
		return services.Wrap(services.ErrIO, component, "read", r.path, r.err)
	}
	return nil
}

// Close closes the file and releases the shared lock.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.file.Close()
	if r.lock != nil {
		if unlockErr := r.lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release lock: %w", unlockErr)
		}
	}
	if err != nil {
		return services.Wrap(services.ErrIO, component, "close", r.path, err)
	}
	return nil
}

// ReadAll returns every line of the word-list file at path.
func ReadAll(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	for line := range r.Lines() {
		lines = append(lines, line)
	}
	return lines, r.Err()
}
