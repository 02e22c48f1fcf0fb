package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Check in and keep your daily streak alive",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	before := store.Player().CurrentStreak
	store.UpdateStreak()
	player := store.Player()

	switch {
	case player.CurrentStreak > before:
		fmt.Printf("Streak extended: %d days!\n", player.CurrentStreak)
	case player.CurrentStreak < before:
		fmt.Printf("Streak reset. Starting fresh at day %d.\n", player.CurrentStreak)
	default:
		fmt.Printf("Already checked in today. Streak: %d days.\n", player.CurrentStreak)
	}
	fmt.Printf("Best: %d days\n", player.LongestStreak)
	return nil
}
