// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Msg* constants are human-readable message strings written into log
// entries to describe the outcome of an operation. Keeping them in one
// place ensures consistent wording throughout the tool.
const (
	// MsgCollectFailed is logged when the key or plain text could not be
	// read from the user.
	MsgCollectFailed = "failed to collect input"

	// MsgNormalizeKeyFailed is logged when key normalization rejects the
	// raw key.
	MsgNormalizeKeyFailed = "failed to normalize key"

	// MsgEncipherFailed is logged when the cipher engine rejects its
	// operands (absent plain text, absent key, or an empty normalized key
	// under the reject policy).
	MsgEncipherFailed = "failed to encipher plain text"

	// MsgPrintFailed is logged when the cipher text cannot be written to
	// the output stream.
	MsgPrintFailed = "failed to print cipher text"

	// MsgClipboardCopyFailed is logged when the cipher text was printed
	// but could not be copied to the system clipboard.
	MsgClipboardCopyFailed = "failed to copy cipher text to clipboard"
)
