// Package main is the single-binary entrypoint for EcoQuest.
// One binary serves the API, plays the game from the terminal, and
// owns the local save.
package main

import (
	"github.com/joho/godotenv"

	"github.com/ecoquest-app/ecoquest/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Optional .env for local overrides (ECOQUEST_HOME etc.); missing
	// files are fine.
	_ = godotenv.Load()

	cli.Execute(version)
}
