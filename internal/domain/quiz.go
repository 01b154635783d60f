package domain

import "fmt"

// DefaultPassThreshold is the fraction of questions that must be answered
// correctly to pass a quiz. 2/3 on a 3-question quiz fails: the required
// count is ceil(n * threshold).
const DefaultPassThreshold = 0.7

// QuizState represents the lifecycle state of a quiz session.
type QuizState string

const (
	QuizNotStarted QuizState = "not_started"
	QuizInProgress QuizState = "in_progress"
	QuizCompleted  QuizState = "completed"
)

// String returns the string representation of the state.
func (s QuizState) String() string {
	return string(s)
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

// Quiz is the static content of one lesson quiz.
type Quiz struct {
	LessonID  string
	Title     string
	Questions []QuizQuestion
	Points    int // awarded on pass
}

// QuizCompletion records a passed quiz: which lesson and how many points.
type QuizCompletion struct {
	LessonID string
	Points   int
}

// QuizSession drives one attempt at a quiz through
// NotStarted -> InProgress -> Completed. Completed is terminal; the only
// way out is Start, which resets to a fresh attempt.
type QuizSession struct {
	quiz          Quiz
	state         QuizState
	questionIndex int
	correctCount  int
	passThreshold float64
	passed        bool
}

// NewQuizSession creates a session for the given quiz in NotStarted state.
// Panics if the quiz has no questions or an out-of-range correct index,
// since that is a content bug, not a user condition.
func NewQuizSession(quiz Quiz) *QuizSession {
	if len(quiz.Questions) == 0 {
		panic(fmt.Sprintf("quiz %q has no questions", quiz.LessonID))
	}
	for i, q := range quiz.Questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			panic(fmt.Sprintf("quiz %q question %d: correct index %d out of range", quiz.LessonID, i, q.CorrectIndex))
		}
	}
	return &QuizSession{
		quiz:          quiz,
		state:         QuizNotStarted,
		passThreshold: DefaultPassThreshold,
	}
}

// SetPassThreshold overrides the pass threshold. Panics on values outside
// (0, 1].
func (s *QuizSession) SetPassThreshold(threshold float64) {
	if threshold <= 0 || threshold > 1 {
		panic(fmt.Sprintf("invalid pass threshold: %v", threshold))
	}
	s.passThreshold = threshold
}

// Start transitions to InProgress at question 0. Restarting a completed
// session resets it to a fresh attempt.
func (s *QuizSession) Start() {
	s.state = QuizInProgress
	s.questionIndex = 0
	s.correctCount = 0
	s.passed = false
}

// Answer scores the current question against the selected option and
// advances the session. After the final question the session transitions
// to Completed. Returns the completion record on a passing finish, nil
// otherwise. Panics if the session is not InProgress or the option index
// is out of range — both are caller bugs, unreachable through the UI.
func (s *QuizSession) Answer(optionIndex int) *QuizCompletion {
	if s.state != QuizInProgress {
		panic(fmt.Sprintf("answer called in state %s", s.state))
	}
	question := s.quiz.Questions[s.questionIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		panic(fmt.Sprintf("option index %d out of range for question %d", optionIndex, s.questionIndex))
	}

	if optionIndex == question.CorrectIndex {
		s.correctCount++
	}
	s.questionIndex++

	if s.questionIndex < len(s.quiz.Questions) {
		return nil
	}

	s.state = QuizCompleted
	s.passed = s.correctCount >= s.RequiredCorrect()
	if s.passed {
		return &QuizCompletion{LessonID: s.quiz.LessonID, Points: s.quiz.Points}
	}
	return nil
}

// RequiredCorrect returns the number of correct answers needed to pass:
// ceil(questionCount * passThreshold), computed in integer arithmetic.
func (s *QuizSession) RequiredCorrect() int {
	n := len(s.quiz.Questions)
	required := int(float64(n) * s.passThreshold)
	if float64(required) < float64(n)*s.passThreshold {
		required++
	}
	return required
}

// State returns the current lifecycle state.
func (s *QuizSession) State() QuizState { return s.state }

// QuestionIndex returns the index of the question awaiting an answer.
func (s *QuizSession) QuestionIndex() int { return s.questionIndex }

// CurrentQuestion returns the question awaiting an answer. Panics when the
// session is not InProgress.
func (s *QuizSession) CurrentQuestion() QuizQuestion {
	if s.state != QuizInProgress {
		panic(fmt.Sprintf("no current question in state %s", s.state))
	}
	return s.quiz.Questions[s.questionIndex]
}

// CorrectCount returns the number of correctly answered questions so far.
func (s *QuizSession) CorrectCount() int { return s.correctCount }

// Passed reports whether a completed session met the pass threshold.
func (s *QuizSession) Passed() bool { return s.state == QuizCompleted && s.passed }

// Score returns the fraction of questions answered correctly. For a failed
// attempt this is the partial-progress fraction recorded for retry.
func (s *QuizSession) Score() float64 {
	return float64(s.correctCount) / float64(len(s.quiz.Questions))
}

// QuestionCount returns the total number of questions in the quiz.
func (s *QuizSession) QuestionCount() int { return len(s.quiz.Questions) }

// LessonID returns the lesson the quiz belongs to.
func (s *QuizSession) LessonID() string { return s.quiz.LessonID }

// Title returns the quiz title.
func (s *QuizSession) Title() string { return s.quiz.Title }
