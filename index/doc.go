// Package index provides an in-memory equality index for graph elements.
//
// # Overview
//
// An equality index maps a key (any comparable value) to the set of graph
// elements (vertices or edges) carrying that key. Owning element stores keep it
// up to date as elements are created, re-keyed and deleted; query layers use it
// to resolve equality predicates into candidate elements without scanning the
// whole element population.
//
// The index is purely in-memory. It has no range or prefix queries and no
// persistence: the owner rebuilds it on demand (see Rebuild).
//
// # Index Implementations
//
// DictionaryIndex: map of key to element set guarded by one mutex (DEFAULT)
//   - Keys and elements are generic type parameters, checked at compile time
//   - Every call is linearizable; there are no torn reads
//
// FoldedIndex: DictionaryIndex over string keys with Unicode case folding
//   - "Straße", "STRASSE" and "strasse" resolve to the same bucket
//   - Keys are folded with golang.org/x/text/cases and NFC-normalized
//
// # Interfaces
//
// ReadOnlyIndex: query-only interface
//   - CountOfKeys, CountOfValues: sizes
//   - GetKeys, GetKeyValues: snapshots of the whole index
//   - GetValue, Contains: single-key lookups
//   - Stats, Description: metrics and plugin metadata
//
// Index: full mutable interface (embeds ReadOnlyIndex)
//   - Initialize, Wipe: reset to empty
//   - AddOrUpdate: index an element under a key
//   - TryRemoveKey: drop a key with all its elements
//   - RemoveValue: drop an element from every key
//
// # Usage Example
//
//	idx := index.NewDictionaryIndex[string, VertexID](index.Options{})
//	idx.AddOrUpdate("berlin", v1)
//	idx.AddOrUpdate("berlin", v2)
//	idx.AddOrUpdate("paris", v1)
//
//	elems, ok := idx.GetValue("berlin") // [v1 v2], true (order unspecified)
//
//	idx.RemoveValue(v1) // v1 leaves "berlin"; "paris" becomes empty and is dropped
//
// # Empty Buckets
//
// RemoveValue drops any key whose bucket it empties. CountOfKeys therefore
// always equals the number of keys for which GetValue returns at least one
// element.
//
// # Thread Safety
//
// All operations on DictionaryIndex and FoldedIndex are safe for concurrent
// use. A single exclusive lock guards each index: reads and writes serialize
// against each other, and there is no reader/writer split. No operation
// performs I/O, and none supports cancellation; callers waiting on the lock
// wait until it is released.
//
// Every read returns an independently owned copy. GetKeyValues materializes
// its snapshot before returning, so ranging over the result never holds the
// lock and is unaffected by concurrent mutation.
//
// The multi-key helpers LookupAny, LookupAll and Rebuild are composed of
// several calls and are not atomic as a whole.
//
// # Pooling
//
// AcquireDictionaryIndex and ReleaseDictionaryIndex recycle indexes through a
// sync.Pool for owners that rebuild short-lived indexes frequently.
package index
