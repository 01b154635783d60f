package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/domain"
)

var (
	binsStatus      string
	binsSearch      string
	binsPickup      string
	binsMaintenance string
)

// binsCmd represents the bins command
var binsCmd = &cobra.Command{
	Use:   "bins",
	Short: "Show the building's smart bin fleet",
	Long: `Show the building's smart bin fleet with status filters.

USAGE:
    wastewise bins [OPTIONS]

OPTIONS:
    --status <status>    Filter by status: active, full, maintenance
    --search <query>     Search by name, floor or location
    --pickup <id>        Request a pickup for the bin with the given ID
    --maintenance <id>   Schedule maintenance for the bin with the given ID
    -h, --help           Show this help

EXAMPLES:
    wastewise bins                    # Whole fleet with summary
    wastewise bins --status full      # Bins needing pickup
    wastewise bins --pickup SB-003    # Request pickup`,
	RunE: runBins,
}

func runBins(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("bins")
	if err != nil {
		return fmt.Errorf("bins: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	if binsPickup != "" {
		session.RequestPickup(binsPickup)
		printNotice(session)
		return nil
	}
	if binsMaintenance != "" {
		session.ScheduleMaintenance(binsMaintenance)
		printNotice(session)
		return nil
	}

	counts := session.BinStatusCounts()
	fmt.Printf("Fleet: %d active, %d full, %d maintenance\n\n",
		counts[domain.BinActive.String()],
		counts[domain.BinFull.String()],
		counts[domain.BinMaintenance.String()])

	state := domain.FilterState{Status: binsStatus, Query: binsSearch}
	bins := session.Bins(state)
	if len(bins) == 0 {
		fmt.Println("No bins match the current filter.")
		return nil
	}
	for _, b := range bins {
		fmt.Printf("%-7s %-22s %-12s %3d%%  %-11s %s\n",
			b.ID, b.Name, b.Floor, b.FillLevel(), b.State, strings.Join(b.Types, "/"))
	}
	return nil
}

func init() {
	binsCmd.Flags().StringVar(&binsStatus, "status", "", "filter by bin status")
	binsCmd.Flags().StringVar(&binsSearch, "search", "", "search bins")
	binsCmd.Flags().StringVar(&binsPickup, "pickup", "", "request pickup for a bin ID")
	binsCmd.Flags().StringVar(&binsMaintenance, "maintenance", "", "schedule maintenance for a bin ID")
	rootCmd.AddCommand(binsCmd)
}
