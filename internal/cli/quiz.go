package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecoquest-app/ecoquest/internal/app/generator"
	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/daemon"
	"github.com/ecoquest-app/ecoquest/internal/domain"
)

func init() {
	quizCmd.Flags().IntVar(&quizCount, "count", 5, "Number of questions")
	quizCmd.Flags().StringVar(&quizCategory, "category", "", "Eco category filter")
	quizCmd.Flags().StringVar(&quizDifficulty, "difficulty", "", "Difficulty filter")
	rootCmd.AddCommand(quizCmd)
}

var (
	quizCount      int
	quizCategory   string
	quizDifficulty string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take an eco-knowledge quiz",
	Long:  `Answer multiple-choice questions and earn 20 XP per correct answer.`,
	RunE:  runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
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

	questions := gen.GenerateQuiz(context.Background(), quizCount,
		domain.QuestType(quizCategory), domain.Difficulty(quizDifficulty))
	if len(questions) == 0 {
		return fmt.Errorf("no questions available")
	}

	scanner := bufio.NewScanner(os.Stdin)
	answers := make([]int, len(questions))

	for i, q := range questions {
		fmt.Printf("\n%d/%d: %s\n", i+1, len(questions), q.Question)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		answers[i] = readAnswer(scanner, len(q.Options))
		if answers[i] == q.CorrectAnswer {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. %s\n", q.Explanation)
		}
	}

	session := progression.NewQuizSession(questions, answers, time.Now())
	store.AddQuizSession(session)

	fmt.Printf("\nScore: %d/%d — +%d XP\n", session.Score, len(questions), session.XPEarned)
	if session.IsPerfect() {
		fmt.Println("Perfect score!")
	}
	player := store.Player()
	fmt.Printf("Level %d — %d XP total\n", player.Level, player.TotalXP)
	return nil
}

// readAnswer prompts until it gets a choice in [1, optionCount].
// EOF or a closed stdin counts as a wrong (sentinel) answer so a piped
// run still terminates.
func readAnswer(scanner *bufio.Scanner, optionCount int) int {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return -1
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= optionCount {
			return n - 1
		}
		fmt.Printf("Enter a number from 1 to %d.\n", optionCount)
	}
}
