package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wastewise/wastewise/internal/sched"
)

func TestShowAndExpire(t *testing.T) {
	clock := sched.NewFake()
	p := NewPresenter(clock)

	require.Nil(t, p.Current())

	p.Show(Success("Booking Confirmed", ""), DefaultTTL)
	require.NotNil(t, p.Current())
	require.Equal(t, "Booking Confirmed", p.Current().Title)

	clock.Advance(DefaultTTL - time.Millisecond)
	require.NotNil(t, p.Current())

	clock.Advance(time.Millisecond)
	require.Nil(t, p.Current())
	require.Equal(t, 0, clock.Pending())
}

func TestShowReplacesAndRestartsTimer(t *testing.T) {
	clock := sched.NewFake()
	p := NewPresenter(clock)

	p.Show(Success("first", ""), DefaultTTL)
	clock.Advance(2 * time.Second)

	// Last write wins and gets a full TTL of its own.
	p.Show(Error("second", ""), DefaultTTL)
	require.Equal(t, "second", p.Current().Title)

	clock.Advance(2 * time.Second)
	require.NotNil(t, p.Current())
	require.Equal(t, "second", p.Current().Title)

	clock.Advance(time.Second)
	require.Nil(t, p.Current())
}

func TestStaleTimerDoesNotClearSuccessor(t *testing.T) {
	clock := sched.NewFake()
	p := NewPresenter(clock)

	p.Show(Success("first", ""), DefaultTTL)
	first := clock.Pending()
	require.Equal(t, 1, first)

	p.Show(Success("second", ""), DefaultTTL)

	// Even if the first timer had fired instead of being canceled, its
	// generation no longer matches and the expiry must be a no-op.
	p.expire(1)
	require.NotNil(t, p.Current())
	require.Equal(t, "second", p.Current().Title)
}

func TestDismissClearsImmediately(t *testing.T) {
	clock := sched.NewFake()
	p := NewPresenter(clock)

	p.Show(Success("done", ""), DefaultTTL)
	p.Dismiss()
	require.Nil(t, p.Current())
	require.Equal(t, 0, clock.Pending())

	// The canceled expiry never resurfaces.
	clock.Advance(time.Minute)
	require.Nil(t, p.Current())

	// Dismissing an empty slot is a no-op.
	p.Dismiss()
	require.Nil(t, p.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	clock := sched.NewFake()
	p := NewPresenter(clock)

	p.Show(Success("title", "msg"), DefaultTTL)
	got := p.Current()
	got.Title = "mutated"
	require.Equal(t, "title", p.Current().Title)
}

func TestWithPoints(t *testing.T) {
	n := Success("Exchange Successful!", "").WithPoints(0)
	require.True(t, n.HasPoints)
	require.Equal(t, 0, n.Points)

	plain := Error("Insufficient Points", "")
	require.False(t, plain.HasPoints)
}
