// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package input collects lines of user input for the cipher flow. The
// default implementation prompts on an output stream and reads from a
// buffered input stream; the terminal UI provides an alternative
// [Collector].
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// reader is the private implementation of [LineReader] over a buffered
// stream, typically os.Stdin, with prompts written to out.
type reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader constructs a [LineReader] reading from in and prompting on out.
func NewReader(in io.Reader, out io.Writer) LineReader {
	return &reader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements [LineReader]. It writes prompt to the output stream
// and reads bytes up to the next '\n'. The newline is excluded from the
// result and a trailing '\r' is stripped so Windows line endings behave the
// same. A final unterminated line is still returned; an end-of-stream
// before any byte was read reports ErrInputClosed.
func (r *reader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
