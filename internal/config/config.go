// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "vigenere/models"

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings controlling the cipher flow.
	App App `envPrefix:"APP_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the
// encipher flow.
type App struct {
	// EmptyKeyPolicy decides the outcome when the normalized key contains
	// no letters at encipher time: "reject" fails fast, "passthrough"
	// returns the plain text unchanged.
	// Env: APP_EMPTY_KEY_POLICY
	EmptyKeyPolicy models.EmptyKeyPolicy `env:"EMPTY_KEY_POLICY"`

	// CopyToClipboard copies the printed cipher text to the system
	// clipboard after a successful run.
	// Env: APP_COPY_TO_CLIPBOARD
	CopyToClipboard bool `env:"COPY_TO_CLIPBOARD"`

	// InteractiveTUI collects the password and plain text through the
	// full-screen terminal UI instead of the plain stdin prompts.
	// Env: APP_INTERACTIVE_TUI
	InteractiveTUI bool `env:"INTERACTIVE_TUI"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Log holds logging configuration.
type Log struct {
	// Level is the minimum emitted log level ("debug", "info", "warn",
	// "error"). Parsed with zerolog.ParseLevel.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources. Returns a fully populated *StructuredConfig or an
// error if any source fails to parse or the merged result is invalid.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in fallback values merged in last, so
// they only fill fields no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EmptyKeyPolicy: models.EmptyKeyReject,
		},
		Log: Log{
			Level: "info",
		},
	}
}
