package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/sched"
)

// newTestSession builds a session on a fake clock so notice expiry and
// refresh delays are driven explicitly.
func newTestSession(t *testing.T, opts Options) (*Session, *sched.FakeScheduler) {
	t.Helper()
	clock := sched.NewFake()
	opts.Scheduler = clock
	session, err := NewSession(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session, clock
}

// points makes an Options.StartingBalance literal readable in tests.
func points(n int) *int {
	return &n
}

func TestNewSessionDefaults(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	require.Equal(t, DefaultStartingBalance, session.Balance())
	require.Nil(t, session.Notice())
	require.Equal(t, "John Smith", session.User().Name)
	require.Equal(t, "Central Mall", session.Organization().BuildingName)
	require.Len(t, session.WasteByType(), 4)

	unread, err := session.UnreadCount()
	require.NoError(t, err)
	require.Equal(t, 2, unread)
}

func TestNewSessionStartingBalanceOverride(t *testing.T) {
	session, _ := newTestSession(t, Options{StartingBalance: points(100)})
	require.Equal(t, 100, session.Balance())
}

func TestNewSessionZeroStartingBalanceKept(t *testing.T) {
	session, _ := newTestSession(t, Options{StartingBalance: points(0)})
	require.Equal(t, 0, session.Balance())
}

func TestNoticeExpiresAfterTTL(t *testing.T) {
	session, clock := newTestSession(t, Options{})

	session.RequestPickup("SB-001")
	require.NotNil(t, session.Notice())

	clock.Advance(4 * time.Second)
	require.Nil(t, session.Notice())
}

func TestDismissNotice(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	session.ScheduleMaintenance("SB-002")
	require.NotNil(t, session.Notice())

	session.DismissNotice()
	require.Nil(t, session.Notice())
}

func TestNoticeSlotLastWriteWins(t *testing.T) {
	session, clock := newTestSession(t, Options{})

	session.RequestPickup("SB-001")
	session.ScheduleMaintenance("SB-002")

	n := session.Notice()
	require.NotNil(t, n)
	require.Equal(t, "Maintenance Scheduled", n.Title)

	// The superseded pickup notice's timer must not clear the newer one.
	clock.Advance(3500 * time.Millisecond)
	require.NotNil(t, session.Notice())
	clock.Advance(time.Second)
	require.Nil(t, session.Notice())
}

func TestCloseCancelsPendingRefresh(t *testing.T) {
	clock := sched.NewFake()
	session, err := NewSession(Options{Scheduler: clock})
	require.NoError(t, err)

	session.Refresh()
	require.True(t, session.Refreshing())
	require.NoError(t, session.Close())

	// The refresh callback was canceled with the session.
	clock.Advance(time.Minute)
	require.Equal(t, 0, clock.Pending())
}

func TestViewsApplyFilterState(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	all := session.Products(domain.FilterState{})
	require.Len(t, all, 7)

	home := session.Products(domain.FilterState{Category: "Home & Garden"})
	require.Len(t, home, 3)
	for _, p := range home {
		require.Equal(t, "Home & Garden", p.ProductCat)
	}

	searched := session.Products(domain.FilterState{Query: "reusable"})
	require.Len(t, searched, 2)

	active := session.Bins(domain.FilterState{Status: "active"})
	require.Len(t, active, 3)

	malls := session.Leaderboard(domain.FilterState{Category: "Mall"})
	require.Len(t, malls, 2)
	require.Equal(t, 1, malls[0].Rank)

	virtual := session.Trainings(domain.FilterState{Category: "Virtual"})
	require.Len(t, virtual, 1)
	require.Equal(t, "2", virtual[0].ID)
}

func TestProductCountsSeeded(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	counts := session.ProductCounts()
	require.Equal(t, 3, counts["Home & Garden"])
	require.Equal(t, 1, counts["Electronics"])
	require.Equal(t, 1, counts["Vouchers"])
	for _, cat := range domain.ProductCategories {
		require.Contains(t, counts, cat)
	}
}

func TestBinStatusCountsSeeded(t *testing.T) {
	session, _ := newTestSession(t, Options{})

	counts := session.BinStatusCounts()
	require.Equal(t, 3, counts["active"])
	require.Equal(t, 1, counts["full"])
	require.Equal(t, 1, counts["maintenance"])
}
