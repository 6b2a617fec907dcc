// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

// rotate shifts plain by the alphabet offset of keyChar, wrapping at 26.
//
// Both characters are reduced to 0–25 offsets from their own case floors,
// the offsets are summed modulo 26, and the plaintext character's case
// floor is added back. The key character's case therefore never influences
// the result: shifting 'A' by 'b' and shifting 'A' by 'B' yield the same
// output character. This asymmetry is kept for compatibility with the
// reference cipher.
//
// Callers must ensure inBounds holds for both arguments; rotate does not
// validate them.
func rotate(plain, keyChar byte) byte {
	plainFloor := floorOf(plain)
	keyFloor := floorOf(keyChar)

	return (plain-plainFloor+keyChar-keyFloor)%alphabetSize + plainFloor
}
