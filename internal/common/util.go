package common

// WipeByteArray overwrites the contents of b with zeros. Used to remove
// passwords and card numbers from memory once they have been handed off.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
