package suffix

import (
	"bytes"
	"iter"
)

// BytesIter iterates over the suffixes of a UTF-8 encoded byte slice. It is
// the byte slice counterpart of [StringIter]. The suffixes it returns alias
// the input, so the input must not be modified while they are in use.
//
// Since slices are not comparable, use [BytesIter.Equal] to compare two
// iterators.
type BytesIter struct {
	suffix []byte
}

// Next returns the current suffix and advances past its first scalar value.
// Once the suffix is empty, Next returns nil and false on every call.
func (it *BytesIter) Next() ([]byte, bool) {
	if len(it.suffix) == 0 {
		return nil, false
	}
	b := it.suffix
	it.suffix = b[runeLen(b):]
	return b, true
}

// SizeHint returns bounds on the number of suffixes left without decoding
// anything.
func (it BytesIter) SizeHint() (lower, upper int) {
	return countHint(len(it.suffix))
}

// Count consumes the iterator and returns the number of suffixes it would
// have produced.
func (it *BytesIter) Count() int {
	n := RuneCount(it.suffix)
	it.suffix = nil
	return n
}

// Remaining returns the suffix the next call to Next would return.
func (it BytesIter) Remaining() []byte {
	return it.suffix
}

// Len returns the length in bytes of the remaining suffix.
func (it BytesIter) Len() int {
	return len(it.suffix)
}

// Done reports whether the iterator is exhausted.
func (it BytesIter) Done() bool {
	return len(it.suffix) == 0
}

// Equal reports whether the remaining suffixes of it and other hold the same
// bytes.
func (it BytesIter) Equal(other BytesIter) bool {
	return bytes.Equal(it.suffix, other.suffix)
}

// Compare compares the remaining suffixes of it and other lexically.
func (it BytesIter) Compare(other BytesIter) int {
	return bytes.Compare(it.suffix, other.suffix)
}

// All returns a sequence that drains the iterator.
func (it *BytesIter) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			b, ok := it.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// Collect drains the iterator and returns its suffixes.
func (it *BytesIter) Collect() [][]byte {
	lower, _ := it.SizeHint()
	suffixes := make([][]byte, 0, lower)
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		suffixes = append(suffixes, b)
	}
	return suffixes
}
