package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wastewise/wastewise/internal/domain"
)

func TestProductsAreValid(t *testing.T) {
	products := Products()
	require.Len(t, products, 7)

	seen := map[string]bool{}
	for _, p := range products {
		require.NoError(t, p.Validate())
		require.False(t, seen[p.ID], "duplicate product ID %s", p.ID)
		seen[p.ID] = true

		found := false
		for _, cat := range domain.ProductCategories {
			if p.ProductCat == cat {
				found = true
				break
			}
		}
		require.True(t, found, "product %s has undeclared category %s", p.ID, p.ProductCat)
	}
}

func TestBinsAreValid(t *testing.T) {
	bins := Bins()
	require.Len(t, bins, 5)

	for _, b := range bins {
		require.NoError(t, b.Validate())
		total := b.Composition.Organic + b.Composition.Recyclable + b.Composition.Residual
		require.Equal(t, 100, total, "bin %s composition does not sum to 100", b.ID)
	}
}

func TestNotificationsAreValid(t *testing.T) {
	notifs := Notifications()
	require.Len(t, notifs, 6)

	unread := 0
	for _, n := range notifs {
		require.NoError(t, n.Validate())
		if !n.Read {
			unread++
		}
	}
	require.Equal(t, 2, unread)
}

func TestLeaderboardIsRanked(t *testing.T) {
	rows := Leaderboard()
	require.Len(t, rows, 5)
	for i, row := range rows {
		require.Equal(t, i+1, row.Rank)
	}
}

func TestSessionsAreValid(t *testing.T) {
	sessions := Sessions()
	require.Len(t, sessions, 4)
	for _, s := range sessions {
		require.NoError(t, s.Validate())
		require.True(t, s.Bookable(), "catalog sessions start with open spots")
	}
}

func TestSortingQuizContent(t *testing.T) {
	quiz := SortingQuiz()
	require.Equal(t, "waste-sorting-basics", quiz.LessonID)
	require.Equal(t, 50, quiz.Points)
	require.Len(t, quiz.Questions, 3)

	// The content must be loadable into a session, which panics on
	// malformed questions.
	require.NotPanics(t, func() { domain.NewQuizSession(quiz) })
}

func TestLoadsAreDeterministic(t *testing.T) {
	require.Equal(t, Products(), Products())
	require.Equal(t, Bins(), Bins())
	require.Equal(t, Notifications(), Notifications())
	require.Equal(t, News(), News())
}

func TestLoadsReturnFreshCopies(t *testing.T) {
	a := Products()
	a[0].Points = 99999
	require.NotEqual(t, a[0].Points, Products()[0].Points)
}
