package domain

import "time"

// ─── Quiz Types ─────────────────────────────────────────────────────────────

// QuizQuestion is one multiple-choice question from the bank (or the
// generator, which returns the same shape).
type QuizQuestion struct {
	ID            string     `json:"id"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Category      QuestType  `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
}

// QuizSession is the immutable record of one completed quiz. Answers is
// a parallel array to Questions (same length and order). Score is the
// count of correct answers.
type QuizSession struct {
	ID          string         `json:"id"`
	Questions   []QuizQuestion `json:"questions"`
	Answers     []int          `json:"answers"`
	Score       int            `json:"score"`
	XPEarned    int            `json:"xpEarned"`
	CompletedAt time.Time      `json:"completedAt"`
}

// IsPerfect reports whether every question was answered correctly.
func (s QuizSession) IsPerfect() bool {
	return len(s.Questions) > 0 && s.Score == len(s.Questions)
}

// QuizXPPerCorrect is the XP credited for each correct answer.
const QuizXPPerCorrect = 20

// ScoreQuiz grades answers against questions and returns (score, xp).
// Extra answers beyond the question count are ignored.
func ScoreQuiz(questions []QuizQuestion, answers []int) (int, int) {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score, score * QuizXPPerCorrect
}
