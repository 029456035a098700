// Package shared provides small utilities used by both the CLI surface and
// the services beneath it.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used for removing passwords from memory after they have been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
