package app

import (
	"github.com/wastewise/wastewise/internal/domain"
)

// Derived views. Each is a pure projection of the authoritative catalog
// plus a filter state, recomputed on every call; nothing here mutates.

// Products returns the visible marketplace subset for the filter state,
// in catalog order.
func (s *Session) Products(state domain.FilterState) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Apply(s.products, state)
}

// ProductCounts returns the per-category badge counts, with every
// declared category present even at zero.
func (s *Session) ProductCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Aggregate(s.products, func(p domain.Product) string {
		return p.Category()
	}, domain.ProductCategories...)
}

// Bins returns the visible bin subset for the filter state.
func (s *Session) Bins(state domain.FilterState) []domain.SmartBin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Apply(s.bins, state)
}

// BinStatusCounts returns the fleet summary shown above the bin filter
// tabs: active, full and maintenance counts, all seeded.
func (s *Session) BinStatusCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Aggregate(s.bins, func(b domain.SmartBin) string {
		return b.Status()
	}, domain.BinActive.String(), domain.BinFull.String(), domain.BinMaintenance.String())
}

// Posts returns the visible community feed subset.
func (s *Session) Posts(state domain.FilterState) []domain.NewsPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Apply(s.posts, state)
}

// Challenges returns the industry challenge list.
func (s *Session) Challenges() []domain.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.challenges
}

// Leaderboard returns the leaderboard rows matching the filter state, in
// rank order.
func (s *Session) Leaderboard(state domain.FilterState) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Apply(s.leaderboard, state)
}

// Trainings returns the bookable session subset for the filter state.
func (s *Session) Trainings(state domain.FilterState) []domain.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Apply(s.trainings, state)
}

// Certifications returns the staff certification coverage stats.
func (s *Session) Certifications() []domain.CertificationStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.certs
}

// BookedSessions returns the booked trainings in booking order.
func (s *Session) BookedSessions() []domain.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var booked []domain.TrainingSession
	for _, id := range s.booked {
		for _, t := range s.trainings {
			if t.ID == id {
				booked = append(booked, t)
				break
			}
		}
	}
	return booked
}
