package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/catalog"
)

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz [answers...]",
	Short: "Take the waste sorting quiz",
	Long: `Take the waste sorting quiz.

Without arguments, prints the questions. With one 1-based option number
per question, scores the whole attempt.

USAGE:
    wastewise quiz [answers...]

EXAMPLES:
    wastewise quiz           # Show the questions
    wastewise quiz 1 3 2     # Answer all three questions`,
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("quiz")
	if err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	quiz := session.QuizSession()

	if len(args) == 0 {
		content := catalog.SortingQuiz()
		fmt.Printf("%s — %d questions, %d correct to pass\n\n",
			content.Title, quiz.QuestionCount(), quiz.RequiredCorrect())
		for i, q := range content.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Prompt)
			for j, opt := range q.Options {
				fmt.Printf("   %d) %s\n", j+1, opt)
			}
		}
		fmt.Println("\nAnswer with: wastewise quiz <option> <option> <option>")
		return nil
	}

	session.StartQuiz()

	if len(args) != quiz.QuestionCount() {
		return fmt.Errorf("quiz: expected %d answers, got %d", quiz.QuestionCount(), len(args))
	}
	for _, arg := range args {
		selected, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("quiz: invalid answer %q: must be an option number", arg)
		}
		q := quiz.CurrentQuestion()
		if selected < 1 || selected > len(q.Options) {
			return fmt.Errorf("quiz: answer %d out of range: question has %d options", selected, len(q.Options))
		}
		session.AnswerQuiz(selected - 1)
	}

	printNotice(session)
	if score, ok := session.PartialScore(quiz.LessonID()); ok {
		fmt.Printf("Progress saved: %.0f%%\n", score*100)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(quizCmd)
}
