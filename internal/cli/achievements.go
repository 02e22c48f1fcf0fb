package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked badges")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"badges"},
	Short:   "Show your badges",
	RunE:    runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	achievements := store.State().Achievements
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tTITLE\tDESCRIPTION\tEARNED")
	shown := 0
	for _, a := range achievements {
		if !a.Unlocked && !achievementsAll {
			continue
		}
		earned := "-"
		if a.UnlockedAt != nil {
			earned = a.UnlockedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Icon, a.Title, a.Description, earned)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if shown == 0 {
		fmt.Println("No badges yet. Complete quests, quizzes, and games to earn them.")
		fmt.Println("Run with --all to see every badge.")
	}
	return nil
}
