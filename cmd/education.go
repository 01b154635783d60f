package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/domain"
)

var (
	educationTab    string
	educationFormat string
	educationBook   string
)

// educationCmd represents the education command
var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Training sessions and certifications",
	Long: `Staff training sessions and certification coverage.

USAGE:
    wastewise education [OPTIONS]

OPTIONS:
    --tab <tab>          Tab: upcoming, certifications, booked (default: upcoming)
    --format <format>    Upcoming filter: In-Person, Virtual
    --book <id>          Book a spot on a training session
    -h, --help           Show this help

EXAMPLES:
    wastewise education                        # Upcoming sessions
    wastewise education --format Virtual       # Remote sessions only
    wastewise education --tab certifications   # Coverage stats
    wastewise education --book 1               # Book a spot`,
	RunE: runEducation,
}

func runEducation(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("education")
	if err != nil {
		return fmt.Errorf("education: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	if educationBook != "" {
		session.BookSession(educationBook)
		printNotice(session)
		return nil
	}

	switch educationTab {
	case "", domain.TabUpcoming:
		state := domain.FilterState{Category: educationFormat}
		for _, t := range session.Trainings(state) {
			fmt.Printf("%-3s %-34s %-12s %s  %d/%d spots left\n",
				t.ID, t.Title, t.Date, t.Format, t.SpotsLeft, t.TotalSpots)
		}
	case domain.TabCertifications:
		for _, c := range session.Certifications() {
			fmt.Printf("%-26s %2d/%2d certified (%3d%%), %d expiring soon\n",
				c.Name, c.Certified, c.TotalStaff, c.CoveragePercent(), c.ExpiringSoon)
		}
	case domain.TabBooked:
		booked := session.BookedSessions()
		if len(booked) == 0 {
			fmt.Println("No booked sessions.")
			return nil
		}
		for _, t := range booked {
			fmt.Printf("%-3s %-34s %s %s\n", t.ID, t.Title, t.Date, t.Time)
		}
	default:
		return fmt.Errorf("education: unknown tab: %s", educationTab)
	}
	return nil
}

func init() {
	educationCmd.Flags().StringVar(&educationTab, "tab", domain.TabUpcoming, "education tab")
	educationCmd.Flags().StringVar(&educationFormat, "format", "", "session format filter")
	educationCmd.Flags().StringVar(&educationBook, "book", "", "book a session ID")
	rootCmd.AddCommand(educationCmd)
}
