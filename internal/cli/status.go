package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecoquest-app/ecoquest/internal/app/progression"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your level, streak, and eco impact",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	player := store.Player()
	name := player.DisplayName
	if name == "" {
		name = player.Name
	}
	if name == "" {
		name = "Eco Explorer"
	}

	fmt.Printf("%s — Level %d\n", name, player.Level)
	fmt.Printf("  %s %d / %d XP\n",
		levelBar(progression.ProgressToNextLevel(player.TotalXP), 30),
		player.TotalXP,
		progression.XPForNextLevel(player.TotalXP),
	)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Streak\t%d days (best %d)\n", player.CurrentStreak, player.LongestStreak)
	fmt.Fprintf(w, "This week\t%d / %d challenges\n",
		player.WeeklyTarget.CurrentWeekProgress, player.WeeklyTarget.ChallengesPerWeek)
	fmt.Fprintf(w, "Challenges\t%d completed\n", player.Stats.ChallengesCompleted)
	fmt.Fprintf(w, "Quizzes\t%d completed\n", player.Stats.QuizzesCompleted)
	fmt.Fprintf(w, "Mini-games\t%d played\n", player.Stats.MiniGamesPlayed)
	fmt.Fprintf(w, "Badges\t%d earned\n", player.Stats.BadgesEarned)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Impact: %.1f kg CO2 saved, $%.0f saved, %.1f trees equivalent\n",
		player.Stats.CO2Saved, player.Stats.MoneySaved, player.Stats.TreesEquivalent)

	if action := progression.NextRecommendedAction(player, store.AvailableQuests()); action != "" {
		fmt.Printf("\nNext up: %s\n", action)
	}
	return nil
}
