// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "testing"

func TestRotate_KnownShifts(t *testing.T) {
	tests := []struct {
		plain   byte
		keyChar byte
		want    byte
	}{
		{'A', 'k', 'K'},
		{'a', 'k', 'k'},
		{'A', 'a', 'A'}, // shift by zero
		{'Z', 'b', 'A'}, // wraps at the end of the alphabet
		{'y', 'c', 'a'},
		{'B', 'e', 'F'},
		{'c', 'Y', 'a'}, // uppercase key, lowercase result
	}

	for _, tt := range tests {
		if got := rotate(tt.plain, tt.keyChar); got != tt.want {
			t.Fatalf("rotate(%q, %q) = %q, want %q", tt.plain, tt.keyChar, got, tt.want)
		}
	}
}

func TestRotate_KeyCaseIsIrrelevant(t *testing.T) {
	for plain := byte('A'); plain <= 'Z'; plain++ {
		for keyChar := byte('a'); keyChar <= 'z'; keyChar++ {
			lower := rotate(plain, keyChar)
			upper := rotate(plain, keyChar-caseDistance)
			if lower != upper {
				t.Fatalf("rotate(%q, %q) = %q but rotate(%q, %q) = %q",
					plain, keyChar, lower, plain, keyChar-caseDistance, upper)
			}
		}
	}
}

func TestRotate_PreservesPlainCase(t *testing.T) {
	for _, keyChar := range []byte{'a', 'M', 'z'} {
		for plain := byte('A'); plain <= 'Z'; plain++ {
			if got := rotate(plain, keyChar); !isUppercase(got) {
				t.Fatalf("rotate(%q, %q) = %q, expected uppercase output", plain, keyChar, got)
			}
		}
		for plain := byte('a'); plain <= 'z'; plain++ {
			if got := rotate(plain, keyChar); !isLowercase(got) {
				t.Fatalf("rotate(%q, %q) = %q, expected lowercase output", plain, keyChar, got)
			}
		}
	}
}
