package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// ArgMin returns the index of the element of s minimizing f.
// Returns -1 if s is empty.
func ArgMin[V any, T constraints.Ordered](s []V, f func(V) T) (idx int) {
	idx = -1
	var best T
	for i, v := range s {
		if fv := f(v); idx == -1 || fv < best {
			best, idx = fv, i
		}
	}
	return
}

// ArgMax returns the index of the element of s maximizing f.
// Returns -1 if s is empty.
func ArgMax[V any, T constraints.Ordered](s []V, f func(V) T) (idx int) {
	idx = -1
	var best T
	for i, v := range s {
		if fv := f(v); idx == -1 || fv > best {
			best, idx = fv, i
		}
	}
	return
}
