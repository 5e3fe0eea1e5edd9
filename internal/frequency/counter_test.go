package frequency_test

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"wordfreq/internal/ehash"
	"wordfreq/internal/frequency"
	"wordfreq/internal/services"
	"wordfreq/internal/testsupport"
)

var kinds = []string{frequency.KindMap, frequency.KindExtendible}

func TestThresholdBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	testsupport.WriteRepeated(t, path, map[string]int{
		"below": 1023,
		"exact": 1024,
		"above": 1500,
		"rare":  1,
	})

	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			summary, err := frequency.Count(path, frequency.Options{Table: kind, Words: true})
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if summary.Threshold != frequency.DefaultThreshold {
				t.Fatalf("expected default threshold, got %d", summary.Threshold)
			}
			if summary.Qualifying != 2 {
				t.Fatalf("expected 2 qualifying words, got %d", summary.Qualifying)
			}
			want := []frequency.WordCount{{Word: "above", Count: 1500}, {Word: "exact", Count: 1024}}
			if !slices.Equal(summary.Words, want) {
				t.Fatalf("unexpected words %+v", summary.Words)
			}
			if summary.Lines != 1023+1024+1500+1 || summary.Distinct != 4 {
				t.Fatalf("unexpected totals %+v", summary)
			}
		})
	}
}

func TestCatDogScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	testsupport.WriteText(t, path, "cat\ncat\ncat\ndog\n")

	for _, kind := range kinds {
		summary, err := frequency.Count(path, frequency.Options{Threshold: 3, Table: kind})
		if err != nil {
			t.Fatalf("%s: Count: %v", kind, err)
		}
		if summary.Qualifying != 1 {
			t.Fatalf("%s: expected 1, got %d", kind, summary.Qualifying)
		}
		if summary.Words != nil {
			t.Fatalf("%s: expected no word listing unless requested", kind)
		}
	}
}

func TestCountIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	testsupport.WriteRepeated(t, path, map[string]int{"a": 5, "b": 3, "c": 9})

	first, err := frequency.Count(path, frequency.Options{Threshold: 4})
	if err != nil {
		t.Fatalf("first Count: %v", err)
	}
	second, err := frequency.Count(path, frequency.Options{Threshold: 4})
	if err != nil {
		t.Fatalf("second Count: %v", err)
	}
	if first.Qualifying != second.Qualifying || first.Qualifying != 2 {
		t.Fatalf("expected stable result 2, got %d then %d", first.Qualifying, second.Qualifying)
	}
}

func TestLinesAreKeysAsStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	testsupport.WriteText(t, path, "Cat\ncat\ncat \n\n\n")

	table, err := frequency.NewTable(frequency.KindMap, 0)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	lines, err := frequency.CountFile(path, table)
	if err != nil {
		t.Fatalf("CountFile: %v", err)
	}
	if lines != 5 {
		t.Fatalf("expected 5 lines, got %d", lines)
	}
	if table.Count("cat") != 1 || table.Count("Cat") != 1 || table.Count("cat ") != 1 || table.Count("") != 2 {
		t.Fatalf("lines were normalized: cat=%d Cat=%d 'cat '=%d empty=%d",
			table.Count("cat"), table.Count("Cat"), table.Count("cat "), table.Count(""))
	}
}

func TestQualifyingOrder(t *testing.T) {
	table, err := frequency.NewTable(frequency.KindExtendible, 2)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for word, n := range map[string]int{"b": 3, "a": 3, "c": 5, "d": 1} {
		for range n {
			table.Add(word)
		}
	}
	got := frequency.Qualifying(table, 2)
	want := []frequency.WordCount{{Word: "c", Count: 5}, {Word: "a", Count: 3}, {Word: "b", Count: 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if frequency.CountAtLeast(table, 2) != 3 {
		t.Fatalf("unexpected CountAtLeast %d", frequency.CountAtLeast(table, 2))
	}
	if frequency.Qualifying(table, 6) != nil {
		t.Fatal("expected nil when nothing qualifies")
	}
}

func TestCountFailures(t *testing.T) {
	dir := t.TempDir()
	_, err := frequency.Count(filepath.Join(dir, "missing.txt"), frequency.Options{})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	path := filepath.Join(dir, "data.txt")
	testsupport.WriteText(t, path, "a\n")
	if _, err := frequency.Count(path, frequency.Options{Table: "btree"}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for unknown table, got %v", err)
	}
	_, err = frequency.Count(path, frequency.Options{Table: frequency.KindExtendible, BucketCapacity: 1})
	if !errors.Is(err, ehash.ErrCapacity) {
		t.Fatalf("expected capacity error, got %v", err)
	}
}

func TestEmptyWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	testsupport.WriteText(t, path, "")

	summary, err := frequency.Count(path, frequency.Options{Threshold: 1})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if summary.Qualifying != 0 || summary.Lines != 0 || summary.Distinct != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
