package cipher

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

import "vigenere/models"

// Service performs the Vigenère transform over in-memory text. It knows
// nothing about terminals, configuration sources, or output formatting; its
// only job is key canonicalization and the character-shift arithmetic.
//
// All methods are pure transformations: they never retain or alias the
// buffers passed in, and they are safe to call from any goroutine.
type Service interface {
	// NormalizeKey produces the canonical form of a raw key: every
	// non-letter is removed (the sequence shortens, order of the kept
	// letters is preserved) and every uppercase letter is lowercased.
	// The result is sized exactly to its letter count. A nil raw key
	// reports ErrNilKey; a raw key without letters yields a valid empty
	// key and no error.
	NormalizeKey(raw models.Key) (models.Key, error)

	// Encipher applies the cipher to plain against key, cycling the key
	// cursor across every plaintext position — including non-letter
	// positions, which pass through unchanged but still consume one step
	// of the key cycle. The returned cipher text is a fresh buffer of
	// identical length; letter positions keep their original case.
	//
	// A nil plain text reports ErrNilPlainText and a nil key reports
	// ErrNilKey; when both are nil both errors are reported together.
	// A non-nil empty key is handled per the configured
	// [models.EmptyKeyPolicy]: ErrEmptyKey under EmptyKeyReject, or an
	// unchanged copy of the plain text under EmptyKeyPassThrough.
	Encipher(plain models.PlainText, key models.Key) (models.CipherText, error)
}
