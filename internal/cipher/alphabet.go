// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

// ASCII alphabet bounds. Uppercase letters span A(65)–Z(90), lowercase
// letters span a(97)–z(122), and the distance between the two cases is 32.
const (
	uppercaseFloor byte = 'A'
	uppercaseCeil  byte = 'Z'
	lowercaseFloor byte = 'a'
	lowercaseCeil  byte = 'z'

	// caseDistance is the offset between an uppercase letter and its
	// lowercase counterpart.
	caseDistance byte = lowercaseFloor - uppercaseFloor

	// alphabetSize is the number of letters in the cipher alphabet.
	alphabetSize = 26
)

// isUppercase reports whether c is an uppercase ASCII letter.
func isUppercase(c byte) bool {
	return c >= uppercaseFloor && c <= uppercaseCeil
}

// isLowercase reports whether c is a lowercase ASCII letter.
func isLowercase(c byte) bool {
	return c >= lowercaseFloor && c <= lowercaseCeil
}

// inBounds reports whether c is an ASCII letter of either case.
func inBounds(c byte) bool {
	return isUppercase(c) || isLowercase(c)
}

// floorOf returns the lowest character value of c's case: 97 for lowercase
// letters, 65 for everything else. Callers must only pass characters for
// which inBounds holds; anything else is treated as uppercase.
func floorOf(c byte) byte {
	if isLowercase(c) {
		return lowercaseFloor
	}
	return uppercaseFloor
}
