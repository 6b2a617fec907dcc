// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the optional full-screen prompt flow. It collects
// the same two lines as the plain stdin prompts — the password (masked) and
// the plain text — and hands them to the cipher flow unchanged.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"vigenere/internal/input"
)

// ErrUserQuit indicates the user cancelled the prompt flow (esc or ctrl+c)
// before submitting both fields.
var ErrUserQuit = errors.New("tui: input cancelled by user")

// Collector is the terminal-UI implementation of [input.Collector].
type Collector struct{}

// NewCollector constructs the terminal-UI [input.Collector].
func NewCollector() input.Collector {
	return &Collector{}
}

// Collect implements [input.Collector]. It runs the prompt program and
// returns the submitted raw key and raw plain text.
func (c *Collector) Collect() (string, string, error) {
	finalModel, err := tea.NewProgram(newPromptModel()).Run()
	if err != nil {
		return "", "", err
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", "", ErrUserQuit
	}

	return result.inputs[fieldKey].Value(), result.inputs[fieldPlainText].Value(), nil
}
