package suffix

import (
	"iter"
	"strings"
)

// StringIter iterates over the suffixes of a UTF-8 string. Each call to
// [StringIter.Next] returns the remaining string and then drops its first
// scalar value. The zero value is an exhausted iterator.
//
// StringIter is comparable: two iterators are equal if their remaining
// suffixes are equal.
//
//	it := suffix.String("añb")
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//		fmt.Println(s) // "añb", "ñb", "b"
//	}
type StringIter struct {
	suffix string
}

// Next returns the current suffix and advances past its first scalar value.
// Once the suffix is empty, Next returns "" and false on every call.
func (it *StringIter) Next() (string, bool) {
	if len(it.suffix) == 0 {
		return "", false
	}
	s := it.suffix
	it.suffix = s[runeLenInString(s):]
	return s, true
}

// SizeHint returns bounds on the number of suffixes left without decoding
// anything: every scalar value is between one and four bytes long.
func (it StringIter) SizeHint() (lower, upper int) {
	return countHint(len(it.suffix))
}

// Count consumes the iterator and returns the number of suffixes it would
// have produced. It scans the remaining bytes once and produces no suffixes.
func (it *StringIter) Count() int {
	n := RuneCountInString(it.suffix)
	it.suffix = ""
	return n
}

// Remaining returns the suffix the next call to Next would return, without
// advancing.
func (it StringIter) Remaining() string {
	return it.suffix
}

// Len returns the length in bytes of the remaining suffix. Use Count or
// SizeHint for the number of suffixes left.
func (it StringIter) Len() int {
	return len(it.suffix)
}

// Done reports whether the iterator is exhausted.
func (it StringIter) Done() bool {
	return len(it.suffix) == 0
}

// Compare compares the remaining suffixes of it and other lexically, as
// [strings.Compare] does.
func (it StringIter) Compare(other StringIter) int {
	return strings.Compare(it.suffix, other.suffix)
}

// All returns a sequence that drains the iterator. If the loop body breaks,
// the suffix it last received has already been consumed.
func (it *StringIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains the iterator and returns its suffixes. The strings share
// memory with the input; only the returned slice is allocated.
func (it *StringIter) Collect() []string {
	lower, _ := it.SizeHint()
	suffixes := make([]string, 0, lower)
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		suffixes = append(suffixes, s)
	}
	return suffixes
}
