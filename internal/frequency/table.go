package frequency

import (
	"fmt"
	"iter"

	"wordfreq/internal/ehash"
)

// Table backends.
const (
	KindMap        = "map"
	KindExtendible = "extendible"
)

// Table accumulates occurrence counts per distinct word.
type Table interface {
	Add(word string)
	Count(word string) int
	Len() int
	All() iter.Seq2[string, int]
}

// NewTable builds an empty table of the requested kind. bucketCapacity only
// applies to the extendible backend.
func NewTable(kind string, bucketCapacity int) (Table, error) {
	switch kind {
	case KindMap, "":
		return &mapTable{counts: make(map[string]int)}, nil
	case KindExtendible:
		t, err := ehash.New[int](bucketCapacity)
		if err != nil {
			return nil, err
		}
		return &extendibleTable{table: t}, nil
	default:
		return nil, fmt.Errorf("unknown frequency table %q", kind)
	}
}

type mapTable struct {
	counts map[string]int
}

func (m *mapTable) Add(word string) { m.counts[word]++ }
func (m *mapTable) Count(word string) int { return m.counts[word] }
func (m *mapTable) Len() int { return len(m.counts) }

func (m *mapTable) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for word, count := range m.counts {
			if !yield(word, count) {
				return
			}
		}
	}
}

type extendibleTable struct {
	table *ehash.Table[int]
}

func increment(old int, _ bool) int { return old + 1 }

func (e *extendibleTable) Add(word string) { e.table.Update(word, increment) }

func (e *extendibleTable) Count(word string) int {
	count, _ := e.table.Get(word)
	return count
}

func (e *extendibleTable) Len() int { return e.table.Len() }

func (e *extendibleTable) All() iter.Seq2[string, int] { return e.table.All() }
