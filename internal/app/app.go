// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the input collector and the cipher service into the
// single-pass encipher flow: collect the raw key and plain text, normalize
// the key, encipher, print.
package app

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"vigenere/internal/cipher"
	"vigenere/internal/config"
	"vigenere/internal/input"
	"vigenere/internal/logger"
	"vigenere/models"
)

// App is the client application. All collaborators are injected so the
// flow can be exercised with mocks in tests.
type App struct {
	cfg       *config.StructuredConfig
	collector input.Collector
	cipher    cipher.Service
	out       io.Writer
	log       *logger.Logger
}

// NewApp constructs the application from its collaborators.
func NewApp(cfg *config.StructuredConfig, collector input.Collector, svc cipher.Service, out io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		collector: collector,
		cipher:    svc,
		out:       out,
		log:       log,
	}
}

// Run executes one encipher pass. Any failure is logged with the failing
// component and returned; nothing is printed to the output stream after a
// reported failure.
func (a *App) Run() error {
	rawKey, rawText, err := a.collector.Collect()
	if err != nil {
		a.log.Error().Err(err).Msg(MsgCollectFailed)
		return fmt.Errorf("%s: %w", MsgCollectFailed, err)
	}

	key, err := a.cipher.NormalizeKey(models.Key(rawKey))
	if err != nil {
		a.log.Error().Err(err).Msg(MsgNormalizeKeyFailed)
		return fmt.Errorf("%s: %w", MsgNormalizeKeyFailed, err)
	}

	cipherText, err := a.cipher.Encipher(models.PlainText(rawText), key)
	if err != nil {
		a.log.Error().Err(err).Msg(MsgEncipherFailed)
		return fmt.Errorf("%s: %w", MsgEncipherFailed, err)
	}

	// Leading newline separates the result from the prompts, matching the
	// reference tool's transcript.
	if _, err := fmt.Fprintf(a.out, "\n%s\n", cipherText); err != nil {
		a.log.Error().Err(err).Msg(MsgPrintFailed)
		return fmt.Errorf("%s: %w", MsgPrintFailed, err)
	}

	if a.cfg.App.CopyToClipboard {
		// A clipboard failure must not invalidate the already printed
		// result; log and carry on.
		if err := clipboard.WriteAll(cipherText.String()); err != nil {
			a.log.Warn().Err(err).Msg(MsgClipboardCopyFailed)
		} else {
			a.log.Debug().Msg("cipher text copied to clipboard")
		}
	}

	return nil
}
