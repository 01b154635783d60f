package domain

import "fmt"

// Education tab identifiers.
const (
	TabUpcoming       = "upcoming"
	TabCertifications = "certifications"
	TabBooked         = "booked"
)

// TrainingSession is a bookable staff training session.
type TrainingSession struct {
	ID            string
	Title         string
	Description   string
	Date          string
	Time          string
	Location      string
	Format        string // "In-Person" or "Virtual"
	Instructor    string
	Certification string
	TargetRole    string
	SpotsLeft     int
	TotalSpots    int
}

// ItemID returns the session identifier.
func (s TrainingSession) ItemID() string { return s.ID }

// Category returns the session format tag.
func (s TrainingSession) Category() string { return s.Format }

// Status returns "" — sessions carry no status tag.
func (s TrainingSession) Status() string { return "" }

// SearchText returns the text matched by free-text search.
func (s TrainingSession) SearchText() string {
	return s.Title + " " + s.Description + " " + s.Instructor
}

// Bookable reports whether the session still has open spots.
func (s TrainingSession) Bookable() bool { return s.SpotsLeft > 0 }

// Validate validates the session and returns an error if invalid.
func (s TrainingSession) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if s.SpotsLeft < 0 || s.SpotsLeft > s.TotalSpots {
		return fmt.Errorf("invalid spot count: %d/%d", s.SpotsLeft, s.TotalSpots)
	}
	return nil
}

// CertificationStat summarizes certification coverage for one program.
type CertificationStat struct {
	ID           string
	Name         string
	TotalStaff   int
	Certified    int
	ExpiringSoon int
}

// CoveragePercent returns certified staff as a percentage of total staff,
// clamped to [0, 100]. A program with no staff reports zero coverage.
func (c CertificationStat) CoveragePercent() int {
	if c.TotalStaff <= 0 {
		return 0
	}
	return ClampPercent(c.Certified * 100 / c.TotalStaff)
}
