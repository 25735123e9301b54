/*
Package suffix enumerates the suffixes of UTF-8 text and of arbitrary slices
without allocating.

# Overview

A suffix is what remains of a sequence after dropping some of its leading
units. For text the unit is a Unicode scalar value (one to four bytes in
UTF-8), for slices it is one element. The iterators in this package start with
the whole input and drop one unit per step:

	"añb" -> "añb", "ñb", "b"
	[]int{1, 2, 3} -> [1 2 3], [2 3], [3]

Every suffix is a sub-string or sub-slice of the input. Nothing is copied, so
the suffixes are only valid as long as the input is, and byte or element
slices must not be modified while suffixes of them are in use.

# Getting Started

For iteration:
  - [String] / [Bytes] / [Slice] - Construct a pull-style iterator
  - [InString] / [InBytes] / [InSlice] - Range over suffixes with a for loop

For counting:
  - [StringIter.Count] / [BytesIter.Count] - Count suffixes in one byte scan
  - [RuneCount] / [RuneCountInString] - The same scan on plain input
  - [StringIter.SizeHint] - Bounds on the count without scanning at all

# Iteration Protocol

Next returns the current suffix and true, then shrinks the iterator. When
the iterator is exhausted, Next returns a zero value and false, and keeps
doing so:

	it := suffix.String("hello")
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		fmt.Println(s)
	}

An empty input produces no suffixes. A slice of N elements produces N
suffixes, the last of length 1.

# UTF-8 Handling

The text iterators trust their input to be valid UTF-8. They find the end of
the first scalar value by looking for the next byte that is not a
continuation byte (0b10xxxxxx) at offsets 1, 2 and 3, falling back to 4, and
never decode or validate runes. Counting uses the same classification, so
for valid UTF-8 Count agrees with the number of suffixes Next produces. On invalid
input the iterators still terminate and never slice out of range, but a step
may not correspond to a decoded rune. Validate with [unicode/utf8.Valid]
first if the input is untrusted.

# Concurrency

Iterators hold nothing but their remaining suffix. An iterator must not be
used from multiple goroutines at once, but any number of iterators may read
the same input concurrently.
*/
package suffix
