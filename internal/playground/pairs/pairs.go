// Package pairs combines sequences element by element.
//
// Every pairing is lazy and truncated to its shortest input: elements left
// over in a longer input are never yielded. Pairs are lo.Tuple2 values, so a
// pairing can itself be paired again to build nested tuples:
//
//	labels := []string{"a", "b"}
//	for p := range pairs.Zip(slices.Values(labels), pairs.ZipSlices(words, numbers)) {
//		label, inner := p.Unpack()
//		word, num := inner.Unpack()
//		...
//	}
package pairs

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Zip pairs the i-th elements of a and b.
// The result ends as soon as either input is exhausted, so it terminates
// whenever at least one input is finite.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[lo.Tuple2[A, B]] {
	return func(yield func(lo.Tuple2[A, B]) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()

		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			if !yield(lo.T2(va, vb)) {
				return
			}
		}
	}
}

// ZipSlices pairs two slices.
func ZipSlices[A, B any](a []A, b []B) iter.Seq[lo.Tuple2[A, B]] {
	return Zip(slices.Values(a), slices.Values(b))
}

// Entries yields the key/value pairs of m in the map's own iteration order,
// which Go does not fix between runs.
func Entries[K comparable, V any](m map[K]V) iter.Seq[lo.Entry[K, V]] {
	return func(yield func(lo.Entry[K, V]) bool) {
		for k, v := range m {
			if !yield(lo.Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// SortedEntries yields the key/value pairs of m ordered by key.
func SortedEntries[K cmp.Ordered, V any](m map[K]V) iter.Seq[lo.Entry[K, V]] {
	entries := lo.Entries(m)
	slices.SortFunc(entries, func(x, y lo.Entry[K, V]) int {
		return cmp.Compare(x.Key, y.Key)
	})
	return slices.Values(entries)
}

// ZipMap pairs a slice with the entries of m in native map order.
func ZipMap[A any, K comparable, V any](a []A, m map[K]V) iter.Seq[lo.Tuple2[A, lo.Entry[K, V]]] {
	return Zip(slices.Values(a), Entries(m))
}

// Len counts the elements of a finite sequence.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
