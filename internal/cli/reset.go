package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and start over",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if !resetYes {
		player := store.Player()
		fmt.Printf("This erases level %d, %d XP, and all progress. Type 'reset' to confirm: ",
			player.Level, player.TotalXP)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store.ResetGame()
	fmt.Println("Progress erased. Welcome back to level 1.")
	return nil
}
