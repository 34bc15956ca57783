package index

import "iter"

// ReadOnlyIndex is the read-only interface for equality lookups.
// Use this when a query layer only needs to resolve keys to candidate elements.
//
// Every method returns an independently owned copy; callers may keep or modify
// the returned slices without affecting the index.
type ReadOnlyIndex[K comparable, V comparable] interface {
	// CountOfKeys returns the number of distinct keys currently indexed.
	CountOfKeys() int

	// CountOfValues returns the total number of (key, element) associations.
	CountOfValues() int

	// GetKeys returns a snapshot of all keys in map iteration order (not sorted).
	GetKeys() []K

	// GetKeyValues returns an iterator over a snapshot of every key paired with
	// a copy of its elements. Mutating the index while ranging is allowed and
	// does not affect the pairs produced.
	GetKeyValues() iter.Seq2[K, []V]

	// GetValue returns a copy of the elements indexed under key.
	// ok is false (and elems nil) when the key is absent.
	GetValue(key K) (elems []V, ok bool)

	// Contains reports whether elem is indexed under key.
	Contains(key K, elem V) bool

	// Stats returns index statistics (sizes, impl type).
	Stats() Stats

	// Description returns the static metadata record used for plugin catalogs.
	Description() Description
}

// Index is the full mutable interface for equality indexing.
// It embeds ReadOnlyIndex and adds the element-lifecycle operations.
//
// Typical usage by an owning element store:
//   - Build phase: AddOrUpdate for every element as it is loaded
//   - Edit phase: AddOrUpdate when an element is created or re-keyed,
//     RemoveValue when it is deleted
//   - Read phase: GetValue to resolve equality predicates
type Index[K comparable, V comparable] interface {
	ReadOnlyIndex[K, V]

	// Initialize discards all state and allocates empty storage.
	Initialize(opts Options)

	// AddOrUpdate ensures elem is present in the bucket for key.
	// Adding an element that is already indexed under key is a no-op.
	AddOrUpdate(key K, elem V)

	// TryRemoveKey removes the whole bucket for key.
	// Returns false if key was not indexed.
	TryRemoveKey(key K) bool

	// RemoveValue removes elem from every bucket it appears in.
	// Safe to call even if elem is not indexed anywhere.
	RemoveValue(elem V)

	// Wipe clears every key and element.
	Wipe()
}

// Stats reports index metrics.
// Keys and Values are captured together and are always mutually consistent.
type Stats struct {
	Keys        int    // Number of distinct keys
	Values      int    // Number of (key, element) associations
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}

// Description is the static metadata an index exposes for discovery and
// registration by a plugin catalog. It is not part of the runtime contract.
type Description struct {
	Name       string // Plugin name, e.g. "DictionaryIndex"
	Capability string // Capability tag the plugin provides, e.g. "index"
	Summary    string // Human-readable description
	Author     string
}

// Options configures index initialization.
// The index ignores everything except allocation hints.
type Options struct {
	// KeyCapacity is the initial key capacity of the backing map.
	// Non-positive values select defaultKeyCapacity.
	KeyCapacity int
}

const (
	// defaultKeyCapacity is the backing map size used when Options.KeyCapacity is unset.
	defaultKeyCapacity = 64

	// CapabilityIndex is the capability tag shared by every index in this package.
	CapabilityIndex = "index"
)

func (o Options) keyCapacity() int {
	if o.KeyCapacity <= 0 {
		return defaultKeyCapacity
	}
	return o.KeyCapacity
}
