// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import "fmt"

// Prompts shown before each collected line. Kept byte-identical to the
// reference tool so interactive transcripts stay compatible.
const (
	PasswordPrompt  = "Password: "
	PlainTextPrompt = "Plain text: "
)

// promptCollector is the private implementation of [Collector] over a
// [LineReader]: two sequential prompts on the standard streams.
type promptCollector struct {
	lines LineReader
}

// NewPromptCollector constructs the default [Collector], which asks for the
// password and the plain text one line at a time.
func NewPromptCollector(lines LineReader) Collector {
	return &promptCollector{lines: lines}
}

// Collect implements [Collector].
func (c *promptCollector) Collect() (string, string, error) {
	rawKey, err := c.lines.ReadLine(PasswordPrompt)
	if err != nil {
		return "", "", fmt.Errorf("collect key: %w", err)
	}

	rawText, err := c.lines.ReadLine(PlainTextPrompt)
	if err != nil {
		return "", "", fmt.Errorf("collect plain text: %w", err)
	}

	return rawKey, rawText, nil
}
