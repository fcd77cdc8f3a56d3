// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Command dataentry opens a small form for entering names and ages and stores
// them in a local database.
//
// Usage:
//
//	go run . [flags]
//	./dataentry [command] [flags]
//
// Settings may also come from a .env file in the working directory.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/toeirei/dataentry/internal/logging"
	"github.com/toeirei/dataentry/ui/cli"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warnf("could not read .env: %v", err)
	}

	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
