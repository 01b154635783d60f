// Package app provides the application layer: a session object that owns
// the authoritative catalogs and applies user-initiated mutations.
// Business-rule failures (insufficient balance, full session) surface as
// transient notices, never as Go errors; errors are reserved for
// infrastructure problems.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/wastewise/wastewise/internal/catalog"
	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/logging"
	"github.com/wastewise/wastewise/internal/notice"
	"github.com/wastewise/wastewise/internal/sched"
	"github.com/wastewise/wastewise/internal/storage"
	"github.com/wastewise/wastewise/internal/storage/sqlite"
)

// Options configures a session. Zero fields fall back to defaults.
// StartingBalance is a pointer because zero is a valid opening balance;
// nil means DefaultStartingBalance.
type Options struct {
	StartingBalance *int
	NoticeTTL       time.Duration // simple confirmations
	RichNoticeTTL   time.Duration // messages carrying an explanation
	ScanDelay       time.Duration // simulated sensor refresh duration
	PassThreshold   float64       // quiz pass fraction
	Scheduler       sched.Scheduler
	Inbox           storage.InboxStore
	Logger          logging.Logger
}

// DefaultStartingBalance matches the mock account used across the app.
const DefaultStartingBalance = 2450

// DefaultScanDelay is the simulated sensor refresh duration.
const DefaultScanDelay = 1500 * time.Millisecond

// Session owns all mutable state for one user session: catalogs, point
// balance, quiz progress and the notice slot. It is created at session
// start and torn down with Close; there are no process-wide singletons.
type Session struct {
	mu sync.Mutex

	user domain.User
	org  domain.Organization

	products    []domain.Product
	bins        []domain.SmartBin
	posts       []domain.NewsPost
	challenges  []domain.Challenge
	leaderboard []domain.LeaderboardEntry
	trainings   []domain.TrainingSession
	certs       []domain.CertificationStat
	waste       []domain.WasteRecord
	booked      []string // booked training session IDs, in booking order

	inbox   storage.InboxStore
	balance int

	quiz        *domain.QuizSession
	completions []domain.QuizCompletion
	partial     map[string]float64 // lesson ID -> partial score on failed attempts

	notices   *notice.Presenter
	scheduler sched.Scheduler
	logger    logging.Logger

	noticeTTL     time.Duration
	richNoticeTTL time.Duration
	scanDelay     time.Duration

	refresh    sched.Handle
	refreshing bool
}

// NewSession creates a session with the static catalogs loaded and the
// inbox seeded.
func NewSession(opts Options) (*Session, error) {
	balance := DefaultStartingBalance
	if opts.StartingBalance != nil {
		balance = *opts.StartingBalance
	}
	if opts.NoticeTTL == 0 {
		opts.NoticeTTL = notice.DefaultTTL
	}
	if opts.RichNoticeTTL == 0 {
		opts.RichNoticeTTL = notice.RichTTL
	}
	if opts.ScanDelay == 0 {
		opts.ScanDelay = DefaultScanDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = sched.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}

	inbox := opts.Inbox
	if inbox == nil {
		store, err := sqlite.NewInboxStore()
		if err != nil {
			return nil, fmt.Errorf("session: open inbox store: %w", err)
		}
		inbox = store
	}
	if err := inbox.Seed(catalog.Notifications()); err != nil {
		_ = inbox.Close()
		return nil, fmt.Errorf("session: seed inbox: %w", err)
	}

	quiz := domain.NewQuizSession(catalog.SortingQuiz())
	if opts.PassThreshold != 0 {
		quiz.SetPassThreshold(opts.PassThreshold)
	}

	s := &Session{
		user:          catalog.CurrentUser(),
		org:           catalog.BuildingProfile(),
		products:      catalog.Products(),
		bins:          catalog.Bins(),
		posts:         catalog.News(),
		challenges:    catalog.Challenges(),
		leaderboard:   catalog.Leaderboard(),
		trainings:     catalog.Sessions(),
		certs:         catalog.Certifications(),
		waste:         catalog.WasteByType(),
		inbox:         inbox,
		balance:       balance,
		quiz:          quiz,
		partial:       make(map[string]float64),
		notices:       notice.NewPresenter(opts.Scheduler),
		scheduler:     opts.Scheduler,
		logger:        opts.Logger,
		noticeTTL:     opts.NoticeTTL,
		richNoticeTTL: opts.RichNoticeTTL,
		scanDelay:     opts.ScanDelay,
	}
	s.logger.Info("session started", "balance", s.balance)
	return s, nil
}

// Close tears the session down, canceling pending callbacks and releasing
// the inbox store.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.refresh != nil {
		s.refresh.Cancel()
		s.refresh = nil
	}
	s.mu.Unlock()
	s.notices.Dismiss()
	return s.inbox.Close()
}

// User returns the signed-in team member.
func (s *Session) User() domain.User { return s.user }

// Organization returns the building profile.
func (s *Session) Organization() domain.Organization { return s.org }

// WasteByType returns the monthly waste breakdown.
func (s *Session) WasteByType() []domain.WasteRecord { return s.waste }

// Balance returns the current point balance.
func (s *Session) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Notice returns the currently visible transient notice, or nil.
func (s *Session) Notice() *notice.Notice {
	return s.notices.Current()
}

// DismissNotice clears the visible notice immediately.
func (s *Session) DismissNotice() {
	s.notices.Dismiss()
}

func (s *Session) show(n notice.Notice) {
	s.notices.Show(n, s.noticeTTL)
}

func (s *Session) showRich(n notice.Notice) {
	s.notices.Show(n, s.richNoticeTTL)
}
