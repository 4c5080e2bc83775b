package common

// WipeByteArray zeroes the contents of b in place. It is safe to call
// with a nil or empty slice. Use it to scrub passwords and other
// secrets from memory once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
