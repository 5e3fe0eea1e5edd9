package wordlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"wordfreq/internal/services"
	"wordfreq/internal/wordlist"
)

func writeTokens(t *testing.T, path string, tokens ...string) {
	t.Helper()
	w, err := wordlist.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, tok := range tokens {
		if err := w.Write(tok); err != nil {
			t.Fatalf("Write(%q): %v", tok, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestWriterFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	writeTokens(t, path, "cat", "cat", "cat", "dog")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "cat\ncat\ncat\ndog\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestWriterOverwritesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("stale\nstale\nstale\nstale\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeTokens(t, path, "fresh")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "fresh\n" {
		t.Fatalf("expected truncated file, got %q", content)
	}
}

func TestWriterRejectsNewlineTokens(t *testing.T) {
	w, err := wordlist.Create(filepath.Join(t.TempDir(), "data.txt"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer w.Close()
	if err := w.Write("a\nb"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if w.Lines() != 0 {
		t.Fatalf("expected no lines counted, got %d", w.Lines())
	}
}

func TestWriteAfterClose(t *testing.T) {
	w, err := wordlist.Create(filepath.Join(t.TempDir(), "data.txt"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := w.Write("late"); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestCreateUnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "data.txt")
	if _, err := wordlist.Create(path); !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected i/o error, got %v", err)
	}
}

func TestReadAllPreservesLinesExactly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("cat\r\n\ndog\nlast"), 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := wordlist.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []string{"cat\r", "", "dog", "last"}
	if !slices.Equal(lines, want) {
		t.Fatalf("got %q want %q", lines, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := wordlist.Open(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying cause to be retained, got %v", err)
	}
}

func TestReaderBlockedWhileWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	w, err := wordlist.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := wordlist.Open(path); !errors.Is(err, services.ErrLocked) {
		t.Fatalf("expected locked error while writer active, got %v", err)
	}
	if _, err := wordlist.Create(path); !errors.Is(err, services.ErrLocked) {
		t.Fatalf("expected locked error for second writer, got %v", err)
	}

	if err := w.Write("cat"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := wordlist.Open(path)
	if err != nil {
		t.Fatalf("Open after close: %v", err)
	}
	defer r.Close()
	var got []string
	for line := range r.Lines() {
		got = append(got, line)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if !slices.Equal(got, []string{"cat"}) || r.Count() != 1 {
		t.Fatalf("unexpected lines %q count %d", got, r.Count())
	}
}

func TestConcurrentReadersShareLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	writeTokens(t, path, "a")

	first, err := wordlist.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	defer first.Close()
	second, err := wordlist.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	if _, err := wordlist.Create(path); !errors.Is(err, services.ErrLocked) {
		t.Fatalf("expected writer to be blocked by readers, got %v", err)
	}
}

func TestReadAllLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	long := strings.Repeat("x", 3<<20)
	writeTokens(t, path, "cat", long, "dog")

	lines, err := wordlist.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(lines) != 3 || lines[0] != "cat" || lines[1] != long || lines[2] != "dog" {
		t.Fatalf("unexpected lines: %d entries", len(lines))
	}
}

func TestNoFilesBesideWordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	writeTokens(t, path, "cat", "dog")
	if _, err := wordlist.ReadAll(path); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.txt" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only data.txt, got %q", names)
	}
}

func TestCreateInReadOnlyDirectoryWithWritableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	writeTokens(t, path, "stale")
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	writeTokens(t, path, "fresh")
	lines, err := wordlist.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !slices.Equal(lines, []string{"fresh"}) {
		t.Fatalf("unexpected lines %q", lines)
	}
}
