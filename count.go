package suffix

// RuneCount returns the number of scalar values in b without decoding them.
// It counts the bytes that are not UTF-8 continuation bytes, which for valid
// UTF-8 equals [unicode/utf8.RuneCount]. This is also the number of suffixes
// that [Bytes] produces for b.
func RuneCount(b []byte) (n int) {
	for _, c := range b {
		if isLeading(c) {
			n++
		}
	}
	return
}

// RuneCountInString is like [RuneCount] but its input is a string.
func RuneCountInString(s string) (n int) {
	// Index the bytes; ranging over a string would decode runes.
	for i := 0; i < len(s); i++ {
		if isLeading(s[i]) {
			n++
		}
	}
	return
}
