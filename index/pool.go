package index

import "sync"

// pools holds one sync.Pool per DictionaryIndex instantiation.
// sync.Pool is not generic, so pools are keyed by a nil pointer of the index type.
var pools sync.Map // map[any]*sync.Pool

func poolFor[K comparable, V comparable]() *sync.Pool {
	key := (*DictionaryIndex[K, V])(nil)
	if p, ok := pools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := pools.LoadOrStore(key, &sync.Pool{})
	return p.(*sync.Pool)
}

// AcquireDictionaryIndex returns a DictionaryIndex from the pool or creates a new one.
// The returned index is empty and ready for use.
//
// A pooled index keeps its previous allocation when opts.KeyCapacity is unset;
// a positive KeyCapacity re-initializes it with that capacity.
func AcquireDictionaryIndex[K comparable, V comparable](opts Options) *DictionaryIndex[K, V] {
	if v := poolFor[K, V]().Get(); v != nil {
		idx := v.(*DictionaryIndex[K, V])
		if opts.KeyCapacity > 0 {
			idx.Initialize(opts)
		} else {
			idx.Wipe()
		}
		return idx
	}
	return NewDictionaryIndex[K, V](opts)
}

// ReleaseDictionaryIndex returns a DictionaryIndex to the pool for reuse.
// The caller must not use idx afterwards.
func ReleaseDictionaryIndex[K comparable, V comparable](idx *DictionaryIndex[K, V]) {
	if idx == nil {
		return
	}
	poolFor[K, V]().Put(idx)
}
