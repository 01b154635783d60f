// Package notice provides the single-slot transient feedback message
// shown after a user action.
package notice

import (
	"sync"
	"time"

	"github.com/wastewise/wastewise/internal/sched"
)

// Kind distinguishes success confirmations from business-rule failures.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Default display durations. Confirmations are short; messages that carry
// an explanation stay a little longer.
const (
	DefaultTTL = 3 * time.Second
	RichTTL    = 4 * time.Second
)

// Notice is a short-lived feedback message.
type Notice struct {
	Kind    Kind
	Title   string
	Message string
	// Points carries the remaining balance on exchange confirmations;
	// HasPoints distinguishes zero from absent.
	Points    int
	HasPoints bool
}

// Success builds a success notice.
func Success(title, message string) Notice {
	return Notice{Kind: KindSuccess, Title: title, Message: message}
}

// Error builds a business-failure notice.
func Error(title, message string) Notice {
	return Notice{Kind: KindError, Title: title, Message: message}
}

// WithPoints attaches a remaining-points payload.
func (n Notice) WithPoints(points int) Notice {
	n.Points = points
	n.HasPoints = true
	return n
}

// Presenter holds at most one visible notice at a time. Showing a notice
// replaces the current one immediately and fully restarts the expiry
// timer; a superseded notice's timer never clears its successor.
type Presenter struct {
	mu      sync.Mutex
	sched   sched.Scheduler
	current *Notice
	expiry  sched.Handle
	gen     int
}

// NewPresenter creates a presenter using the given scheduler for expiry.
func NewPresenter(s sched.Scheduler) *Presenter {
	return &Presenter{sched: s}
}

// Show replaces any visible notice with n and schedules its expiry after
// ttl. Last write wins; there is no queue of pending notices.
func (p *Presenter) Show(n Notice, ttl time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expiry != nil {
		p.expiry.Cancel()
	}
	p.gen++
	gen := p.gen
	p.current = &n
	p.expiry = p.sched.After(ttl, func() {
		p.expire(gen)
	})
}

// expire clears the notice only if it is still the one the timer was
// armed for.
func (p *Presenter) expire(gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.current = nil
	p.expiry = nil
}

// Dismiss is the user-invoked manual clear. It cancels the pending expiry
// and clears the slot immediately.
func (p *Presenter) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expiry != nil {
		p.expiry.Cancel()
		p.expiry = nil
	}
	p.gen++
	p.current = nil
}

// Current returns the visible notice, or nil when the slot is empty.
func (p *Presenter) Current() *Notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	n := *p.current
	return &n
}
