// Package cli implements the EcoQuest command-line interface using
// Cobra. Each subcommand maps to one progression flow (quests, quiz,
// games, streak) or to serving the HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecoquest",
	Short: "EcoQuest — Gamified eco-education",
	Long: `EcoQuest turns everyday eco-habits into a game.
Complete challenges, take quizzes, play mini-games, keep your streak
alive, and watch your level and real-world impact grow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
