package index

import "iter"

// LookupAny returns every element indexed under at least one of keys, without
// duplicates. Absent keys contribute nothing.
//
// Example:
//
//	elems := LookupAny(idx, "red", "green")
//
// Each key is resolved with its own GetValue call, so the result is not a
// single atomic snapshot when the index is mutated concurrently.
func LookupAny[K comparable, V comparable](idx ReadOnlyIndex[K, V], keys ...K) []V {
	seen := make(map[V]struct{})
	var out []V
	for _, key := range keys {
		elems, ok := idx.GetValue(key)
		if !ok {
			continue
		}
		for _, elem := range elems {
			if _, dup := seen[elem]; dup {
				continue
			}
			seen[elem] = struct{}{}
			out = append(out, elem)
		}
	}
	return out
}

// LookupAll returns the elements indexed under every one of keys.
// Returns nil if no keys are given or any key is absent.
//
// Like LookupAny, each key is resolved independently.
func LookupAll[K comparable, V comparable](idx ReadOnlyIndex[K, V], keys ...K) []V {
	if len(keys) == 0 {
		return nil
	}

	first, ok := idx.GetValue(keys[0])
	if !ok {
		return nil
	}
	candidates := make(map[V]struct{}, len(first))
	for _, elem := range first {
		candidates[elem] = struct{}{}
	}

	for _, key := range keys[1:] {
		elems, found := idx.GetValue(key)
		if !found {
			return nil
		}
		present := make(map[V]struct{}, len(elems))
		for _, elem := range elems {
			present[elem] = struct{}{}
		}
		for elem := range candidates {
			if _, keep := present[elem]; !keep {
				delete(candidates, elem)
			}
		}
		if len(candidates) == 0 {
			return nil
		}
	}

	// Preserve the order GetValue reported for the first key.
	out := make([]V, 0, len(candidates))
	for _, elem := range first {
		if _, keep := candidates[elem]; keep {
			out = append(out, elem)
		}
	}
	return out
}

// Rebuild wipes idx and re-indexes every (key, element) pair from pairs.
// Owners call this to rebuild the index from their element store on demand.
//
// Rebuild is not atomic: concurrent readers may observe the index partially
// rebuilt.
func Rebuild[K comparable, V comparable](idx Index[K, V], pairs iter.Seq2[K, V]) {
	idx.Wipe()
	for key, elem := range pairs {
		idx.AddOrUpdate(key, elem)
	}
}
