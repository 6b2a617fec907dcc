// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import "errors"

// ErrInputClosed indicates the input stream ended before a line could be
// read (for example, end-of-file on an empty stdin).
var ErrInputClosed = errors.New("input: stream closed before a line was read")
