package suffix

import "iter"

// String returns an iterator over the suffixes of the UTF-8 string s,
// treating s itself as the first suffix if it is not empty. Construction is
// free: s is neither copied nor validated.
func String(s string) StringIter {
	return StringIter{suffix: s}
}

// Bytes returns an iterator over the suffixes of the UTF-8 encoded byte slice
// b, treating b itself as the first suffix if it is not empty. The iterator
// and all suffixes it produces share b's backing array.
func Bytes(b []byte) BytesIter {
	return BytesIter{suffix: b}
}

// Slice returns an iterator over the suffixes of s, treating s itself as the
// first suffix if it is not empty. The iterator and all suffixes it produces
// share s's backing array.
func Slice[T any](s []T) SliceIter[T] {
	return SliceIter[T]{suffix: s}
}

// InString returns a sequence of the suffixes of s, longest first, dropping
// one scalar value at a time.
// Unlike [StringIter.All], the sequence may be ranged over more than once.
func InString(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		it := String(s)
		it.All()(yield)
	}
}

// InBytes is like [InString] but its input and outputs are byte slices.
func InBytes(b []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it := Bytes(b)
		it.All()(yield)
	}
}

// InSlice returns a sequence of the suffixes of s, longest first, dropping one
// element at a time.
func InSlice[T any](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		it := Slice(s)
		it.All()(yield)
	}
}
