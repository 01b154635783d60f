package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the facility dashboard",
	Long: `Show the facility dashboard: organization profile, monthly waste
breakdown and ESG figures.

USAGE:
    wastewise stats`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("stats")
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	user := session.User()
	org := session.Organization()
	fmt.Printf("%s (%s) — %s, %s plan\n\n", org.BuildingName, org.BuildingType, user.Role, org.ContractPlan)
	fmt.Printf("Waste processed this month: %d kg\n", org.WasteMonthKg)
	fmt.Printf("Diversion rate: %d%%   ESG score: %d (%s)\n", org.DiversionRate, org.ESGScore, org.ESGLevel)
	fmt.Printf("Cost savings: %s   Smart bins: %d   Next pickup: %s\n\n", org.CostSavings, org.SmartBinCount, org.NextPickup)

	for _, w := range session.WasteByType() {
		fmt.Printf("%-12s %s %s\n", w.Type, w.Amount, w.Unit)
	}

	unread, err := session.UnreadCount()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	fmt.Printf("\nUnread notifications: %d   Points: %d\n", unread, session.Balance())
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
