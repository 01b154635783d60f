package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/notice"
)

// The catalog quiz has three questions with correct options 0, 2 and 1,
// worth 50 points on a pass.

func TestQuizPassAwardsPoints(t *testing.T) {
	session, _ := newTestSession(t, Options{StartingBalance: points(100)})

	session.StartQuiz()
	session.AnswerQuiz(0)
	session.AnswerQuiz(2)
	session.AnswerQuiz(1)

	require.Equal(t, 150, session.Balance())
	require.True(t, session.QuizSession().Passed())

	completions := session.Completions()
	require.Len(t, completions, 1)
	require.Equal(t, "waste-sorting-basics", completions[0].LessonID)
	require.Equal(t, 50, completions[0].Points)

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, notice.KindSuccess, n.Kind)
	require.Equal(t, "Quiz Passed!", n.Title)
	require.Contains(t, n.Message, "3/3")
	require.True(t, n.HasPoints)
	require.Equal(t, 150, n.Points)

	_, ok := session.PartialScore("waste-sorting-basics")
	require.False(t, ok)
}

func TestQuizTwoOfThreeFails(t *testing.T) {
	session, _ := newTestSession(t, Options{StartingBalance: points(100)})

	session.StartQuiz()
	session.AnswerQuiz(0)
	session.AnswerQuiz(2)
	session.AnswerQuiz(0) // wrong

	require.Equal(t, 100, session.Balance())
	require.False(t, session.QuizSession().Passed())
	require.Empty(t, session.Completions())

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, notice.KindError, n.Kind)
	require.Contains(t, n.Message, "2/3")

	partial, ok := session.PartialScore("waste-sorting-basics")
	require.True(t, ok)
	require.InDelta(t, 2.0/3.0, partial, 1e-9)
}

func TestQuizRetryAfterFailClearsPartial(t *testing.T) {
	session, _ := newTestSession(t, Options{StartingBalance: points(0)})

	session.StartQuiz()
	session.AnswerQuiz(1)
	session.AnswerQuiz(1)
	session.AnswerQuiz(0)
	_, ok := session.PartialScore("waste-sorting-basics")
	require.True(t, ok)

	session.StartQuiz()
	session.AnswerQuiz(0)
	session.AnswerQuiz(2)
	session.AnswerQuiz(1)

	require.Equal(t, 50, session.Balance())
	_, ok = session.PartialScore("waste-sorting-basics")
	require.False(t, ok)
}

func TestQuizMidAttemptShowsNoNotice(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.StartQuiz()
	session.AnswerQuiz(0)
	require.Nil(t, session.Notice())
	require.Equal(t, domain.QuizInProgress, session.QuizSession().State())
}

func TestQuizLowerThresholdOption(t *testing.T) {
	session, _ := newTestSession(t, Options{PassThreshold: 0.5})

	session.StartQuiz()
	session.AnswerQuiz(0)
	session.AnswerQuiz(2)
	session.AnswerQuiz(0) // wrong, but 2/3 >= ceil(3*0.5)

	require.True(t, session.QuizSession().Passed())
	require.Len(t, session.Completions(), 1)
}
