// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"

	"vigenere/models"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-empty-key policy for an empty normalized key: reject or passthrough
//	-copy copy the cipher text to the system clipboard
//	-tui collect input through the interactive terminal UI
//	-log-level minimum log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var emptyKeyPolicy string
	var copyToClipboard bool
	var interactiveTUI bool
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&emptyKeyPolicy, "empty-key", "", "Empty normalized key policy: reject or passthrough")
	flag.BoolVar(&copyToClipboard, "copy", false, "Copy cipher text to the system clipboard")
	flag.BoolVar(&interactiveTUI, "tui", false, "Collect input through the interactive terminal UI")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EmptyKeyPolicy:  models.EmptyKeyPolicy(emptyKeyPolicy),
			CopyToClipboard: copyToClipboard,
			InteractiveTUI:  interactiveTUI,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
