// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the polyalphabetic substitution cipher behind
// [Service]: character classification, the single-character rotation, key
// normalization, and the key-cycling encipher pass.
package cipher

import (
	"errors"

	"vigenere/models"
)

// vigenereService is the private implementation of [Service].
type vigenereService struct {
	// emptyKeyPolicy decides the encipher outcome when the normalized key
	// has zero length. Fixed at construction time.
	emptyKeyPolicy models.EmptyKeyPolicy
}

// NewService constructs a [Service] with the given empty-key policy.
// An unknown policy behaves as [models.EmptyKeyReject].
func NewService(policy models.EmptyKeyPolicy) Service {
	return &vigenereService{emptyKeyPolicy: policy}
}

// Encipher implements [Service].
func (s *vigenereService) Encipher(plain models.PlainText, key models.Key) (models.CipherText, error) {
	var err error
	if plain == nil {
		err = errors.Join(err, ErrNilPlainText)
	}
	if key == nil {
		err = errors.Join(err, ErrNilKey)
	}
	if err != nil {
		return nil, err
	}

	if len(key) == 0 {
		if s.emptyKeyPolicy == models.EmptyKeyPassThrough {
			return models.CipherText(plain.Clone()), nil
		}
		return nil, ErrEmptyKey
	}

	out := models.CipherText(plain.Clone())

	// The cursor advances on every position, letter or not, so that the
	// key cycle stays in lockstep with the plaintext position. Skipping
	// non-letters would change every ciphertext after the first one.
	cursor := 0
	for i := range out {
		if cursor == len(key) {
			cursor = 0
		}

		if inBounds(out[i]) {
			out[i] = rotate(out[i], key[cursor])
		}

		cursor++
	}

	return out, nil
}
