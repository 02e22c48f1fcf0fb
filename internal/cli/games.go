package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/domain"
	"github.com/ecoquest-app/ecoquest/internal/infra/catalog"
)

func init() {
	gamesCmd.AddCommand(gamesScoreCmd)
	rootCmd.AddCommand(gamesCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the eco mini-games",
	RunE:  runGamesList,
}

var gamesScoreCmd = &cobra.Command{
	Use:   "score <game-id> <score>",
	Short: "Record a mini-game score",
	Args:  cobra.ExactArgs(2),
	RunE:  runGamesScore,
}

func runGamesList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tMAX SCORE\tMAX XP")
	for _, g := range catalog.MiniGames {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			g.ID, g.Title, g.Category, g.Difficulty, g.MaxScore, g.XPReward)
	}
	return w.Flush()
}

func runGamesScore(cmd *cobra.Command, args []string) error {
	game := catalog.GameByID(args[0])
	if game == nil {
		return domain.ErrGameNotFound
	}

	rawScore, err := strconv.Atoi(args[1])
	if err != nil || rawScore < 0 {
		return fmt.Errorf("score must be a non-negative number")
	}

	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	score := progression.NewGameScore(*game, rawScore, time.Now())
	store.AddMiniGameScore(score)

	player := store.Player()
	fmt.Printf("%s: %d points — +%d XP\n", game.Title, score.Score, score.XPEarned)
	fmt.Printf("Level %d — %d XP total\n", player.Level, player.TotalXP)
	return nil
}
