package app

import (
	"fmt"

	"github.com/wastewise/wastewise/internal/notice"
)

// BookSession reserves a spot on a training session. A full session is a
// business failure reported via notice; the catalog stays unchanged.
// Unknown IDs are a silent no-op. Booking the same session twice is
// rejected with an error notice.
func (s *Session) BookSession(sessionID string) {
	s.mu.Lock()

	idx := -1
	for i, t := range s.trainings {
		if t.ID == sessionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.logger.Warn("book session: unknown session", "id", sessionID)
		return
	}

	for _, id := range s.booked {
		if id == sessionID {
			title := s.trainings[idx].Title
			s.mu.Unlock()
			s.showRich(notice.Error("Already Booked", fmt.Sprintf("You already have a spot in %s", title)))
			return
		}
	}

	if !s.trainings[idx].Bookable() {
		title := s.trainings[idx].Title
		s.mu.Unlock()
		s.logger.Info("booking rejected: session full", "session", sessionID)
		s.showRich(notice.Error("Session Full", fmt.Sprintf("No spots left in %s", title)))
		return
	}

	s.trainings[idx].SpotsLeft--
	s.booked = append(s.booked, sessionID)
	title := s.trainings[idx].Title
	left := s.trainings[idx].SpotsLeft
	s.mu.Unlock()

	s.logger.Info("session booked", "session", sessionID, "spots_left", left)
	s.show(notice.Success("Booking Confirmed", fmt.Sprintf("You're registered for %s", title)))
}
