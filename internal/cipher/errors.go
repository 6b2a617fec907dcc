// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "errors"

// Sentinel errors returned by [Service] operations.
var (
	// ErrNilKey indicates the key handle was absent (nil) when
	// normalization or enciphering was attempted.
	ErrNilKey = errors.New("cipher: key is nil")

	// ErrNilPlainText indicates the plain text handle was absent (nil)
	// when enciphering was attempted.
	ErrNilPlainText = errors.New("cipher: plain text is nil")

	// ErrEmptyKey indicates the normalized key contained no letters at
	// encipher time while the reject policy was in effect.
	ErrEmptyKey = errors.New("cipher: normalized key is empty")
)
