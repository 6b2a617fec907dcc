// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "vigenere/models"

// NormalizeKey implements [Service]. It returns a new key containing only
// the letters of raw, each lowercased, in their original relative order.
// Returns ErrNilKey if the raw key handle is absent.
func (s *vigenereService) NormalizeKey(raw models.Key) (models.Key, error) {
	if raw == nil {
		return nil, ErrNilKey
	}

	letters := 0
	for _, c := range raw {
		if inBounds(c) {
			letters++
		}
	}

	// Allocated to the exact letter count so no spare capacity survives
	// the normalization.
	key := make(models.Key, 0, letters)
	for _, c := range raw {
		if !inBounds(c) {
			continue
		}
		if isUppercase(c) {
			c += caseDistance
		}
		key = append(key, c)
	}

	return key, nil
}
