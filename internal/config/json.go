// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"vigenere/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		EmptyKeyPolicy  string `json:"empty_key_policy"`
		CopyToClipboard bool   `json:"copy_to_clipboard"`
		InteractiveTUI  bool   `json:"interactive_tui"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EmptyKeyPolicy:  models.EmptyKeyPolicy(jsonCfg.App.EmptyKeyPolicy),
			CopyToClipboard: jsonCfg.App.CopyToClipboard,
			InteractiveTUI:  jsonCfg.App.InteractiveTUI,
			Version:         jsonCfg.App.Version,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
