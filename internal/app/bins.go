package app

import (
	"fmt"

	"github.com/wastewise/wastewise/internal/notice"
)

// RequestPickup sends a pickup request for a bin and confirms with a
// notice. Unknown IDs are a silent no-op.
func (s *Session) RequestPickup(binID string) {
	name, ok := s.binName(binID)
	if !ok {
		s.logger.Warn("request pickup: unknown bin", "id", binID)
		return
	}
	s.logger.Info("pickup requested", "bin", binID)
	s.showRich(notice.Success(
		"Pickup Requested",
		fmt.Sprintf("Pickup request sent for %s. ETA: 30 minutes", name),
	))
}

// ScheduleMaintenance submits a maintenance request for a bin and
// confirms with a notice. Unknown IDs are a silent no-op.
func (s *Session) ScheduleMaintenance(binID string) {
	name, ok := s.binName(binID)
	if !ok {
		s.logger.Warn("schedule maintenance: unknown bin", "id", binID)
		return
	}
	s.logger.Info("maintenance scheduled", "bin", binID)
	s.showRich(notice.Success(
		"Maintenance Scheduled",
		fmt.Sprintf("Maintenance request submitted for %s", name),
	))
}

func (s *Session) binName(binID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bins {
		if b.ID == binID {
			return b.Name, true
		}
	}
	return "", false
}

// Refresh simulates a sensor data refresh: after the configured delay a
// confirmation notice appears. Re-triggering while a refresh is running
// supersedes the pending one, so a stale callback cannot fire after a
// newer refresh started.
func (s *Session) Refresh() {
	s.mu.Lock()
	if s.refresh != nil {
		s.refresh.Cancel()
	}
	s.refreshing = true
	s.refresh = s.scheduler.After(s.scanDelay, func() {
		s.mu.Lock()
		s.refreshing = false
		s.refresh = nil
		s.mu.Unlock()
		s.show(notice.Success("Data Refreshed", "All sensor data has been updated"))
	})
	s.mu.Unlock()
	s.logger.Debug("sensor refresh started")
}

// Refreshing reports whether a simulated refresh is in flight.
func (s *Session) Refreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshing
}

// AlertCount returns the number of bins whose sensor is in warning or
// critical state.
func (s *Session) AlertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, b := range s.bins {
		if b.NeedsAttention() {
			count++
		}
	}
	return count
}

// SensorsOnline returns how many bin sensors are online, and the fleet
// size.
func (s *Session) SensorsOnline() (online, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bins {
		if b.SensorOnline {
			online++
		}
	}
	return online, len(s.bins)
}
