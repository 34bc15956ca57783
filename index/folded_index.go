package index

import (
	"iter"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/graphindex/internal/foldcache"
)

// FoldedIndex is a DictionaryIndex over string keys with Unicode-aware
// case-insensitive matching.
//
// Keys are case-folded and then NFC-normalized before storage and lookup, so
// "Straße", "STRASSE" and "strasse" all resolve to the same bucket, as do
// precomposed and decomposed forms of the same accented text. Keys reported
// by GetKeys and GetKeyValues are in folded form.
type FoldedIndex[V comparable] struct {
	inner *DictionaryIndex[string, V]
}

// NewFoldedIndex creates an empty FoldedIndex.
func NewFoldedIndex[V comparable](opts Options) *FoldedIndex[V] {
	return &FoldedIndex[V]{inner: NewDictionaryIndex[string, V](opts)}
}

// FoldKey returns the normalized form under which FoldedIndex stores key.
// Results for recently seen keys are served from a shared LRU cache.
func FoldKey(key string) string {
	return foldcache.Default.Fold(key, foldKey)
}

func foldKey(key string) string {
	// cases.Caser is stateful; a fresh one per call keeps foldKey goroutine-safe.
	return norm.NFC.String(cases.Fold().String(key))
}

// Initialize implements Index.
func (f *FoldedIndex[V]) Initialize(opts Options) { f.inner.Initialize(opts) }

// CountOfKeys implements ReadOnlyIndex.
func (f *FoldedIndex[V]) CountOfKeys() int { return f.inner.CountOfKeys() }

// CountOfValues implements ReadOnlyIndex.
func (f *FoldedIndex[V]) CountOfValues() int { return f.inner.CountOfValues() }

// AddOrUpdate implements Index.
func (f *FoldedIndex[V]) AddOrUpdate(key string, elem V) {
	f.inner.AddOrUpdate(FoldKey(key), elem)
}

// TryRemoveKey implements Index.
func (f *FoldedIndex[V]) TryRemoveKey(key string) bool {
	return f.inner.TryRemoveKey(FoldKey(key))
}

// RemoveValue implements Index.
func (f *FoldedIndex[V]) RemoveValue(elem V) { f.inner.RemoveValue(elem) }

// Wipe implements Index.
func (f *FoldedIndex[V]) Wipe() { f.inner.Wipe() }

// GetKeys implements ReadOnlyIndex.
func (f *FoldedIndex[V]) GetKeys() []string { return f.inner.GetKeys() }

// GetKeyValues implements ReadOnlyIndex.
func (f *FoldedIndex[V]) GetKeyValues() iter.Seq2[string, []V] {
	return f.inner.GetKeyValues()
}

// GetValue implements ReadOnlyIndex.
func (f *FoldedIndex[V]) GetValue(key string) ([]V, bool) {
	return f.inner.GetValue(FoldKey(key))
}

// Contains implements ReadOnlyIndex.
func (f *FoldedIndex[V]) Contains(key string, elem V) bool {
	return f.inner.Contains(FoldKey(key), elem)
}

// Stats implements ReadOnlyIndex.
func (f *FoldedIndex[V]) Stats() Stats {
	stats := f.inner.Stats()
	stats.Impl = "FoldedIndex"
	return stats
}

// Description implements ReadOnlyIndex.
func (f *FoldedIndex[V]) Description() Description {
	return Description{
		Name:       "FoldedIndex",
		Capability: CapabilityIndex,
		Summary:    "A dictionary index with case-insensitive string keys",
		Author:     dictionaryDescription.Author,
	}
}

var (
	_ Index[string, int] = (*DictionaryIndex[string, int])(nil)
	_ Index[string, int] = (*FoldedIndex[int])(nil)
)
