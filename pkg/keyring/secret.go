package keyring

import "unsafe"

// secretURI owns the combined seed-phrase plus derivation-path buffer handed
// to the key deriver. The backing memory must be zeroed before release on
// every exit path, so callers defer Wipe right after construction.
type secretURI struct {
	buf []byte
}

// newSecretURI concatenates the parts into a buffer sized exactly once. The
// capacity is pre-computed because a growing append would reallocate and
// leave an unzeroed copy of the secret behind.
func newSecretURI(seedPhrase, path string) *secretURI {
	buf := make([]byte, 0, len(seedPhrase)+len(path))
	buf = append(buf, seedPhrase...)
	buf = append(buf, path...)
	return &secretURI{buf: buf}
}

// String exposes the buffer as a string without copying it. The view aliases
// the buffer and is only meaningful until Wipe runs.
func (s *secretURI) String() string {
	return unsafe.String(unsafe.SliceData(s.buf), len(s.buf))
}

// Wipe overwrites the backing memory with zeros.
func (s *secretURI) Wipe() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}
