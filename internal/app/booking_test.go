package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/notice"
)

func TestBookSession(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.BookSession("1")

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, notice.KindSuccess, n.Kind)
	require.Equal(t, "Booking Confirmed", n.Title)

	booked := session.BookedSessions()
	require.Len(t, booked, 1)
	require.Equal(t, "1", booked[0].ID)
	require.Equal(t, 7, booked[0].SpotsLeft) // was 8
}

func TestBookSessionTwiceRejected(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.BookSession("2")
	session.BookSession("2")

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, notice.KindError, n.Kind)
	require.Equal(t, "Already Booked", n.Title)
	require.Len(t, session.BookedSessions(), 1)
}

func TestBookSessionUnknownIDIsSilent(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.BookSession("999")
	require.Nil(t, session.Notice())
	require.Empty(t, session.BookedSessions())
}

func TestBookSessionFull(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	// Drain session 3's remaining spots directly.
	session.mu.Lock()
	for i := range session.trainings {
		if session.trainings[i].ID == "3" {
			session.trainings[i].SpotsLeft = 0
		}
	}
	session.mu.Unlock()

	session.BookSession("3")

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, notice.KindError, n.Kind)
	require.Equal(t, "Session Full", n.Title)
	require.Empty(t, session.BookedSessions())
}

func TestBookedSessionsPreserveBookingOrder(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.BookSession("4")
	session.BookSession("1")

	booked := session.BookedSessions()
	require.Len(t, booked, 2)
	require.Equal(t, "4", booked[0].ID)
	require.Equal(t, "1", booked[1].ID)
}

func TestToggleLike(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	posts := session.Posts(domain.FilterState{})
	require.Equal(t, 42, posts[0].Likes)
	require.False(t, posts[0].Liked)

	session.ToggleLike("1")
	posts = session.Posts(domain.FilterState{})
	require.Equal(t, 43, posts[0].Likes)
	require.True(t, posts[0].Liked)

	// Toggling back restores the original count.
	session.ToggleLike("1")
	posts = session.Posts(domain.FilterState{})
	require.Equal(t, 42, posts[0].Likes)
	require.False(t, posts[0].Liked)
}

func TestToggleLikeUnknownPostIsSilent(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	before := session.Posts(domain.FilterState{})
	session.ToggleLike("999")
	require.Equal(t, before, session.Posts(domain.FilterState{}))
	require.Nil(t, session.Notice())
}
