package models

import "bytes"

// Key is a cipher key held as an owned, growable byte sequence.
// A nil Key is the absent state; a non-nil zero-length Key is a valid but
// degenerate key (it contains no letters after normalization).
type Key []byte

// PlainText is the text entered by the user. The cipher preserves its
// length and the position of every character; only letter positions have
// their value replaced.
type PlainText []byte

// CipherText is the enciphered form of a PlainText. It is always a fresh
// buffer owned by the caller, never an alias of the input.
type CipherText []byte

// Clone returns an owned copy of the key.
func (k Key) Clone() Key {
	return bytes.Clone(k)
}

// Clone returns an owned copy of the plain text.
func (p PlainText) Clone() PlainText {
	return bytes.Clone(p)
}

// String returns the cipher text as a printable string.
func (c CipherText) String() string {
	return string(c)
}
