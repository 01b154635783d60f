package app

import (
	"fmt"

	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/notice"
)

// StartQuiz begins (or restarts) the sorting quiz attempt.
func (s *Session) StartQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz.Start()
	s.logger.Debug("quiz started")
}

// AnswerQuiz scores the selected option for the current question. When
// the attempt completes, a pass awards points and shows a success notice;
// a fail records the partial score for retry and shows an error notice.
func (s *Session) AnswerQuiz(optionIndex int) {
	s.mu.Lock()

	completion := s.quiz.Answer(optionIndex)
	if s.quiz.State() != domain.QuizCompleted {
		s.mu.Unlock()
		return
	}

	if completion != nil {
		s.completions = append(s.completions, *completion)
		s.balance += completion.Points
		delete(s.partial, completion.LessonID)
		correct := s.quiz.CorrectCount()
		total := s.quiz.QuestionCount()
		points := completion.Points
		balance := s.balance
		s.mu.Unlock()
		s.logger.Info("quiz passed", "lesson", completion.LessonID, "score", fmt.Sprintf("%d/%d", correct, total))
		s.showRich(notice.Success(
			"Quiz Passed!",
			fmt.Sprintf("You scored %d/%d and earned %d points", correct, total, points),
		).WithPoints(balance))
		return
	}

	lessonID := s.quiz.LessonID()
	s.partial[lessonID] = s.quiz.Score()
	correct := s.quiz.CorrectCount()
	total := s.quiz.QuestionCount()
	required := s.quiz.RequiredCorrect()
	s.mu.Unlock()
	s.logger.Info("quiz failed", "lesson", lessonID, "score", fmt.Sprintf("%d/%d", correct, total))
	s.showRich(notice.Error(
		"Not Quite There",
		fmt.Sprintf("You scored %d/%d; %d correct answers are needed to pass. Try again!", correct, total, required),
	))
}

// QuizSession exposes the quiz state machine for rendering.
func (s *Session) QuizSession() *domain.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Completions returns the passed-quiz records in completion order.
func (s *Session) Completions() []domain.QuizCompletion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completions
}

// PartialScore returns the recorded partial-progress fraction for a
// lesson whose last attempt failed, and whether one exists.
func (s *Session) PartialScore(lessonID string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.partial[lessonID]
	return score, ok
}
