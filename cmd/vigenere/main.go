// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"vigenere/internal/app"
	"vigenere/internal/cipher"
	"vigenere/internal/config"
	"vigenere/internal/input"
	"vigenere/internal/logger"
	"vigenere/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("vigenere")
	logBuildInfo(log)

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.Log.Level)

	svc := cipher.NewService(cfg.App.EmptyKeyPolicy)

	var collector input.Collector
	if cfg.App.InteractiveTUI {
		collector = tui.NewCollector()
	} else {
		collector = input.NewPromptCollector(input.NewReader(os.Stdin, os.Stdout))
	}

	application := app.NewApp(cfg, collector, svc, os.Stdout, log)
	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("encipher run failed")
	}
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("build info")
}
