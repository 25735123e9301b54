package suffix

import (
	"cmp"
	"iter"
	"slices"
)

// SliceIter iterates over the suffixes of a slice, dropping one element per
// step. Unlike the text iterators, it always knows exactly how many suffixes
// are left.
type SliceIter[T any] struct {
	suffix []T
}

// Next returns the current suffix and drops its first element. Once the
// suffix is empty, Next returns nil and false on every call.
func (it *SliceIter[T]) Next() ([]T, bool) {
	if len(it.suffix) < 1 {
		return nil, false
	}
	s := it.suffix
	it.suffix = s[1:]
	return s, true
}

// Len returns the number of suffixes left, which is the number of remaining
// elements.
func (it SliceIter[T]) Len() int {
	return len(it.suffix)
}

// SizeHint returns Len as both bounds.
func (it SliceIter[T]) SizeHint() (lower, upper int) {
	return len(it.suffix), len(it.suffix)
}

// Count consumes the iterator and returns the number of suffixes left.
func (it *SliceIter[T]) Count() int {
	n := len(it.suffix)
	it.suffix = nil
	return n
}

// Remaining returns the suffix the next call to Next would return.
func (it SliceIter[T]) Remaining() []T {
	return it.suffix
}

// Done reports whether the iterator is exhausted.
func (it SliceIter[T]) Done() bool {
	return len(it.suffix) == 0
}

// All returns a sequence that drains the iterator.
func (it *SliceIter[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// All2 is like All but also yields the index of each suffix, starting at 0
// for the suffix the iterator currently holds.
func (it *SliceIter[T]) All2() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; ; i++ {
			s, ok := it.Next()
			if !ok || !yield(i, s) {
				return
			}
		}
	}
}

// Collect drains the iterator and returns its suffixes.
func (it *SliceIter[T]) Collect() [][]T {
	suffixes := make([][]T, 0, len(it.suffix))
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		suffixes = append(suffixes, s)
	}
	return suffixes
}

// SliceEqual reports whether the remaining suffixes of a and b hold equal
// elements.
func SliceEqual[T comparable](a, b SliceIter[T]) bool {
	return slices.Equal(a.suffix, b.suffix)
}

// SliceCompare compares the remaining suffixes of a and b lexically, as
// [slices.Compare] does.
func SliceCompare[T cmp.Ordered](a, b SliceIter[T]) int {
	return slices.Compare(a.suffix, b.suffix)
}
