package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecoquest-app/ecoquest/internal/app/generator"
	"github.com/ecoquest-app/ecoquest/internal/daemon"
	"github.com/ecoquest-app/ecoquest/internal/domain"
)

func init() {
	questNewCmd.Flags().StringVar(&questType, "type", "", "Eco category (waste, water, energy, transport, biodiversity)")
	questNewCmd.Flags().StringVar(&questDifficulty, "difficulty", "", "Difficulty (easy, medium, hard)")
	questListCmd.Flags().BoolVar(&questAll, "all", false, "Include completed quests")

	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questNewCmd)
	questCmd.AddCommand(questStartCmd)
	questCmd.AddCommand(questCompleteCmd)
	rootCmd.AddCommand(questCmd)
}

var (
	questType       string
	questDifficulty string
	questAll        bool
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Manage eco-challenges",
}

var questListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your quests",
	RunE:    runQuestList,
}

var questNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Draw a new quest",
	RunE:  runQuestNew,
}

var questStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Mark a quest as in progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestStart,
}

var questCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a quest and collect its XP",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestComplete,
}

func runQuestList(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	quests := store.State().Quests
	if len(quests) == 0 {
		fmt.Println("No quests yet. Run 'ecoquest quest new' to draw one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tDIFFICULTY\tXP\tSTATUS")
	for _, q := range quests {
		if q.IsCompleted() && !questAll {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(q.ID), q.Title, q.Type, q.Difficulty, q.XPReward, q.Status)
	}
	return w.Flush()
}

func runQuestNew(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}
	gen := generator.New(cfg.Generator.URL, cfg.GeneratorTimeout())

	quest := gen.GenerateQuest(context.Background(),
		domain.QuestType(questType), domain.Difficulty(questDifficulty))
	store.AddQuest(quest)

	fmt.Printf("New quest: %s (%s, %s, %d XP)\n", quest.Title, quest.Type, quest.Difficulty, quest.XPReward)
	fmt.Printf("  %s\n", quest.Description)
	fmt.Printf("  id: %s\n", quest.ID)
	return nil
}

func runQuestStart(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	quest, err := resolveQuest(store.State().Quests, args[0])
	if err != nil {
		return err
	}

	status := domain.QuestInProgress
	store.UpdateQuest(quest.ID, domain.QuestUpdate{Status: &status})
	fmt.Printf("Started: %s\n", quest.Title)
	return nil
}

func runQuestComplete(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	quest, err := resolveQuest(store.State().Quests, args[0])
	if err != nil {
		return err
	}

	before := store.UnlockedAchievements()
	if !store.CompleteQuest(quest.ID) {
		return fmt.Errorf("quest %q is already completed", quest.Title)
	}

	player := store.Player()
	fmt.Printf("Completed: %s (+%d XP)\n", quest.Title, quest.XPReward)
	fmt.Printf("Level %d — %d XP total\n", player.Level, player.TotalXP)

	for _, a := range newlyUnlocked(before, store.UnlockedAchievements()) {
		fmt.Printf("Badge unlocked: %s %s — %s\n", a.Icon, a.Title, a.Description)
	}
	return nil
}

// resolveQuest matches a quest by full id or unambiguous prefix.
func resolveQuest(quests []domain.Quest, ref string) (domain.Quest, error) {
	var matches []domain.Quest
	for _, q := range quests {
		if q.ID == ref {
			return q, nil
		}
		if len(ref) >= 4 && len(q.ID) >= len(ref) && q.ID[:len(ref)] == ref {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.Quest{}, domain.ErrQuestNotFound
	default:
		return domain.Quest{}, fmt.Errorf("quest id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func newlyUnlocked(before, after []domain.Achievement) []domain.Achievement {
	known := make(map[string]bool, len(before))
	for _, a := range before {
		known[a.ID] = true
	}
	var out []domain.Achievement
	for _, a := range after {
		if !known[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
