package ehash

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// MaxDepth bounds the directory at 2^MaxDepth slots.
const MaxDepth = 32

// ErrCapacity is returned when a bucket capacity below 2 is requested.
var ErrCapacity = errors.New("ehash: bucket capacity must be at least 2")

// HashFunc maps a key to its 64-bit hash.
type HashFunc func(string) uint64

// Option customizes a Table.
type Option func(*options)

type options struct {
	hash HashFunc
}

// WithHash replaces the default xxhash64 key hash.
func WithHash(fn HashFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.hash = fn
		}
	}
}

type entry[V any] struct {
	hash  uint64
	key   string
	value V
}

type bucket[V any] struct {
	depth uint8
	items []entry[V]
}

// Table is an extendible hash table from string keys to values of type V.
type Table[V any] struct {
	capacity int
	depth    uint8
	dir      []*bucket[V]
	buckets  []*bucket[V]
	size     int
	hash     HashFunc
}

// New returns an empty table whose buckets split once they hold
// bucketCapacity entries.
func New[V any](bucketCapacity int, opts ...Option) (*Table[V], error) {
	if bucketCapacity < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrCapacity, bucketCapacity)
	}
	o := options{hash: xxhash.Sum64String}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[V]{
		capacity: bucketCapacity,
		depth:    1,
		hash:     o.hash,
	}
	for range 2 {
		b := &bucket[V]{depth: 1, items: make([]entry[V], 0, bucketCapacity)}
		t.buckets = append(t.buckets, b)
		t.dir = append(t.dir, b)
	}
	return t, nil
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int { return t.size }

// GlobalDepth returns the number of hash bits the directory indexes.
func (t *Table[V]) GlobalDepth() int { return int(t.depth) }

// BucketCount returns the number of allocated buckets.
func (t *Table[V]) BucketCount() int { return len(t.buckets) }

// DirectorySize returns the number of directory slots.
func (t *Table[V]) DirectorySize() int { return len(t.dir) }

// Capacity returns the configured bucket capacity.
func (t *Table[V]) Capacity() int { return t.capacity }

func (t *Table[V]) bucketFor(h uint64) *bucket[V] {
	return t.dir[h&(uint64(len(t.dir))-1)]
}

func (b *bucket[V]) find(h uint64, key string) int {
	for i := range b.items {
		if b.items[i].hash == h && b.items[i].key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	h := t.hash(key)
	b := t.bucketFor(h)
	if i := b.find(h, key); i >= 0 {
		return b.items[i].value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key, replacing any previous value.
func (t *Table[V]) Put(key string, value V) {
	t.Update(key, func(V, bool) V { return value })
}

// Update replaces the value under key with fn(old, found). When the key is
// absent fn receives the zero value and false, and its result is inserted.
func (t *Table[V]) Update(key string, fn func(old V, found bool) V) {
	h := t.hash(key)
	b := t.bucketFor(h)
	if i := b.find(h, key); i >= 0 {
		b.items[i].value = fn(b.items[i].value, true)
		return
	}

	var zero V
	b.items = append(b.items, entry[V]{hash: h, key: key, value: fn(zero, false)})
	t.size++
	if len(b.items) >= t.capacity {
		t.split(b)
	}
}

// Delete removes key from the table. Buckets are never merged.
func (t *Table[V]) Delete(key string) bool {
	h := t.hash(key)
	b := t.bucketFor(h)
	i := b.find(h, key)
	if i < 0 {
		return false
	}
	last := len(b.items) - 1
	b.items[i] = b.items[last]
	b.items[last] = entry[V]{}
	b.items = b.items[:last]
	t.size--
	return true
}

// All iterates over every key and value in bucket allocation order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b.items {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *Table[V]) split(b *bucket[V]) {
	for len(b.items) >= t.capacity && b.depth < MaxDepth && !uniformHash(b.items) {
		if b.depth == t.depth {
			t.dir = append(t.dir, t.dir...)
			t.depth++
		}

		bit := uint64(1) << b.depth
		first := b.items[0].hash & (bit - 1)
		b.depth++
		sibling := &bucket[V]{depth: b.depth, items: make([]entry[V], 0, t.capacity)}

		kept := b.items[:0]
		for _, e := range b.items {
			if e.hash&bit != 0 {
				sibling.items = append(sibling.items, e)
			} else {
				kept = append(kept, e)
			}
		}
		clear(b.items[len(kept):])
		b.items = kept

		for i := first | bit; i < uint64(len(t.dir)); i += bit << 1 {
			t.dir[i] = sibling
		}
		t.buckets = append(t.buckets, sibling)

		if len(sibling.items) >= t.capacity {
			b = sibling
		}
	}
}

func uniformHash[V any](items []entry[V]) bool {
	for i := 1; i < len(items); i++ {
		if items[i].hash != items[0].hash {
			return false
		}
	}
	return true
}
