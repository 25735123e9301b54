package suffix

// UTF-8 boundary classification.
//
// Both the stepping iterators and the counting scan classify bytes with
// isLeading, so the number of items produced by Next always matches Count.
// The input is trusted to be valid UTF-8. On invalid input the functions
// below are still total: every step consumes between one and four bytes and
// never runs past the end of the input.

// maxRuneLen is the longest encoding of a Unicode scalar value in UTF-8.
const maxRuneLen = 4

// isLeading reports whether b starts a scalar value, that is, whether it is
// not a continuation byte of the form 0b10xxxxxx. Continuation bytes are
// exactly the bytes in [0x80, 0xBF], which are the signed values below -64.
func isLeading(b byte) bool {
	return int8(b) >= -64
}

// runeLen returns the byte length of the first scalar value in s. It tests
// the offsets 1, 2 and 3 for a boundary and falls back to 4. The caller must
// ensure s is not empty.
func runeLen(s []byte) int {
	switch {
	case len(s) <= 1 || isLeading(s[1]):
		return 1
	case len(s) == 2 || isLeading(s[2]):
		return 2
	case len(s) == 3 || isLeading(s[3]):
		return 3
	}
	return maxRuneLen
}

// runeLenInString is like [runeLen] but its input is a string.
func runeLenInString(s string) int {
	switch {
	case len(s) <= 1 || isLeading(s[1]):
		return 1
	case len(s) == 2 || isLeading(s[2]):
		return 2
	case len(s) == 3 || isLeading(s[3]):
		return 3
	}
	return maxRuneLen
}

// countHint returns the bounds on the number of scalar values encoded in n
// bytes: each scalar takes at least one and at most four bytes.
func countHint(n int) (lower, upper int) {
	return (n + maxRuneLen - 1) / maxRuneLen, n
}
