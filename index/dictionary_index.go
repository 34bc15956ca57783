package index

import (
	"iter"
	"sync"
	"unsafe"
)

const (
	// estimatedBytesPerBucket is the rough overhead of one key entry: map slot plus
	// the header of the bucket's own set map.
	estimatedBytesPerBucket = 80

	// estimatedBytesPerSetSlot is the rough overhead of one set entry beyond the element itself.
	estimatedBytesPerSetSlot = 16
)

var dictionaryDescription = Description{
	Name:       "DictionaryIndex",
	Capability: CapabilityIndex,
	Summary:    "A very conservative dictionary index",
	Author:     "Henning Rauch",
}

// bucket is the set of elements sharing one key.
type bucket[V comparable] map[V]struct{}

// keyValues is one entry of a GetKeyValues snapshot.
type keyValues[K comparable, V comparable] struct {
	key   K
	elems []V
}

// DictionaryIndex is a map-based equality index from a key to the set of
// elements carrying it.
//
// Every operation, read or write, holds a single mutex for its full duration.
// There is no reader/writer split: reads block writes and each other. This
// keeps every call linearizable and makes torn reads impossible.
//
// A DictionaryIndex is Ready as soon as it is constructed; there is no
// separate setup step. Initialize and Wipe both leave it Ready and empty.
// The zero value is an empty index ready for use.
type DictionaryIndex[K comparable, V comparable] struct {
	mu  sync.Mutex
	idx map[K]bucket[V]
}

// NewDictionaryIndex creates an empty DictionaryIndex.
func NewDictionaryIndex[K comparable, V comparable](opts Options) *DictionaryIndex[K, V] {
	return &DictionaryIndex[K, V]{
		idx: make(map[K]bucket[V], opts.keyCapacity()),
	}
}

// Initialize implements Index.
// Prior state is discarded; the new map is sized from opts.
func (d *DictionaryIndex[K, V]) Initialize(opts Options) {
	d.mu.Lock()
	d.idx = make(map[K]bucket[V], opts.keyCapacity())
	d.mu.Unlock()
}

// CountOfKeys implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) CountOfKeys() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.idx)
}

// CountOfValues implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) CountOfValues() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.countValuesLocked()
}

// AddOrUpdate implements Index.
func (d *DictionaryIndex[K, V]) AddOrUpdate(key K, elem V) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.idx == nil {
		d.idx = make(map[K]bucket[V], defaultKeyCapacity)
	}
	if b, ok := d.idx[key]; ok {
		b[elem] = struct{}{}
		return
	}
	d.idx[key] = bucket[V]{elem: {}}
}

// TryRemoveKey implements Index.
func (d *DictionaryIndex[K, V]) TryRemoveKey(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.idx[key]; !ok {
		return false
	}
	delete(d.idx, key)
	return true
}

// RemoveValue implements Index.
// Buckets left empty by the removal are dropped, so CountOfKeys only ever
// counts keys that resolve to at least one element.
func (d *DictionaryIndex[K, V]) RemoveValue(elem V) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, b := range d.idx {
		if _, ok := b[elem]; !ok {
			continue
		}
		delete(b, elem)
		if len(b) == 0 {
			delete(d.idx, key)
		}
	}
}

// Wipe implements Index.
func (d *DictionaryIndex[K, V]) Wipe() {
	d.mu.Lock()
	clear(d.idx)
	d.mu.Unlock()
}

// GetKeys implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) GetKeys() []K {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys := make([]K, 0, len(d.idx))
	for key := range d.idx {
		keys = append(keys, key)
	}
	return keys
}

// GetKeyValues implements ReadOnlyIndex.
//
// The snapshot is materialized under the lock before the iterator is returned,
// so ranging over it never holds the lock and never observes later mutations.
func (d *DictionaryIndex[K, V]) GetKeyValues() iter.Seq2[K, []V] {
	d.mu.Lock()
	snapshot := make([]keyValues[K, V], 0, len(d.idx))
	for key, b := range d.idx {
		snapshot = append(snapshot, keyValues[K, V]{key: key, elems: b.slice()})
	}
	d.mu.Unlock()

	return func(yield func(K, []V) bool) {
		for _, p := range snapshot {
			if !yield(p.key, p.elems) {
				return
			}
		}
	}
}

// GetValue implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) GetValue(key K) ([]V, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.idx[key]
	if !ok {
		return nil, false
	}
	return b.slice(), true
}

// Contains implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) Contains(key K, elem V) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.idx[key][elem]
	return ok
}

// Stats implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	var (
		zeroK K
		zeroV V
	)
	keys := len(d.idx)
	values := d.countValuesLocked()

	// Rough estimate: per-key bucket overhead + key size, per-value slot + element size
	bytes := keys*(estimatedBytesPerBucket+int(unsafe.Sizeof(zeroK))) +
		values*(estimatedBytesPerSetSlot+int(unsafe.Sizeof(zeroV)))

	return Stats{
		Keys:        keys,
		Values:      values,
		BytesApprox: bytes,
		Impl:        "DictionaryIndex",
	}
}

// Description implements ReadOnlyIndex.
func (d *DictionaryIndex[K, V]) Description() Description {
	return dictionaryDescription
}

func (d *DictionaryIndex[K, V]) countValuesLocked() int {
	n := 0
	for _, b := range d.idx {
		n += len(b)
	}
	return n
}

// slice copies the set into a new slice.
func (b bucket[V]) slice() []V {
	out := make([]V, 0, len(b))
	for elem := range b {
		out = append(out, elem)
	}
	return out
}
