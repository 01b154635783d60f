package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testQuiz() Quiz {
	return Quiz{
		LessonID: "sorting-101",
		Title:    "Sorting 101",
		Points:   50,
		Questions: []QuizQuestion{
			{Prompt: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Prompt: "q2", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
			{Prompt: "q3", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
	}
}

func TestQuizSessionLifecycle(t *testing.T) {
	s := NewQuizSession(testQuiz())
	require.Equal(t, QuizNotStarted, s.State())

	s.Start()
	require.Equal(t, QuizInProgress, s.State())
	require.Equal(t, 0, s.QuestionIndex())
	require.Equal(t, "q1", s.CurrentQuestion().Prompt)

	require.Nil(t, s.Answer(0))
	require.Equal(t, 1, s.QuestionIndex())
	require.Nil(t, s.Answer(2))

	completion := s.Answer(1)
	require.Equal(t, QuizCompleted, s.State())
	require.NotNil(t, completion)
	require.Equal(t, "sorting-101", completion.LessonID)
	require.Equal(t, 50, completion.Points)
	require.True(t, s.Passed())
}

func TestQuizRequiredCorrectIsCeil(t *testing.T) {
	s := NewQuizSession(testQuiz())
	// ceil(3 * 0.7) = 3: two out of three is not enough.
	require.Equal(t, 3, s.RequiredCorrect())

	s.Start()
	require.Nil(t, s.Answer(0))
	require.Nil(t, s.Answer(2))
	require.Nil(t, s.Answer(0)) // wrong

	require.Equal(t, QuizCompleted, s.State())
	require.False(t, s.Passed())
	require.InDelta(t, 2.0/3.0, s.Score(), 1e-9)
}

func TestQuizCustomThreshold(t *testing.T) {
	s := NewQuizSession(testQuiz())
	s.SetPassThreshold(0.5)
	// ceil(3 * 0.5) = 2.
	require.Equal(t, 2, s.RequiredCorrect())

	s.Start()
	s.Answer(0)
	s.Answer(2)
	completion := s.Answer(0)
	require.NotNil(t, completion)
	require.True(t, s.Passed())
}

func TestQuizThresholdOneRequiresAll(t *testing.T) {
	s := NewQuizSession(testQuiz())
	s.SetPassThreshold(1)
	require.Equal(t, 3, s.RequiredCorrect())
}

func TestQuizRestartResetsAttempt(t *testing.T) {
	s := NewQuizSession(testQuiz())
	s.Start()
	s.Answer(1)
	s.Answer(0)
	s.Answer(0)
	require.Equal(t, QuizCompleted, s.State())
	require.False(t, s.Passed())

	s.Start()
	require.Equal(t, QuizInProgress, s.State())
	require.Equal(t, 0, s.QuestionIndex())
	require.Equal(t, 0, s.CorrectCount())
	require.False(t, s.Passed())
}

func TestQuizPanicsOnCallerBugs(t *testing.T) {
	require.Panics(t, func() {
		NewQuizSession(Quiz{LessonID: "empty"})
	})
	require.Panics(t, func() {
		NewQuizSession(Quiz{
			LessonID:  "bad-index",
			Questions: []QuizQuestion{{Prompt: "q", Options: []string{"a"}, CorrectIndex: 1}},
		})
	})

	s := NewQuizSession(testQuiz())
	// Answering or reading a question before Start is a caller bug.
	require.Panics(t, func() { s.Answer(0) })
	require.Panics(t, func() { s.CurrentQuestion() })
	require.Panics(t, func() { s.SetPassThreshold(0) })
	require.Panics(t, func() { s.SetPassThreshold(1.1) })

	s.Start()
	require.Panics(t, func() { s.Answer(-1) })
	// q1 has two options.
	require.Panics(t, func() { s.Answer(2) })
}
