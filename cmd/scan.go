package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/domain"
)

var scanRefresh bool

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show live bin sensor telemetry",
	Long: `Show live bin sensor telemetry.

USAGE:
    wastewise scan [OPTIONS]

OPTIONS:
    --refresh            Trigger a simulated sensor refresh before printing
    -h, --help           Show this help`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("scan")
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	if scanRefresh {
		session.Refresh()
		// The refresh is a simulated delay; wait it out so the
		// confirmation is printed before the command exits.
		for session.Refreshing() {
			time.Sleep(50 * time.Millisecond)
		}
		printNotice(session)
		fmt.Println()
	}

	online, total := session.SensorsOnline()
	fmt.Printf("Alerts: %d   Sensors online: %d/%d\n\n", session.AlertCount(), online, total)

	for _, b := range session.Bins(domain.FilterState{}) {
		sensor := "online"
		if !b.SensorOnline {
			sensor = "offline"
		}
		fmt.Printf("%-7s %-22s %3d%%  %-8s %2d°C  %-7s org %d%% / rec %d%% / res %d%%\n",
			b.ID, b.Name, b.FillLevel(), b.Sensor, b.Temperature, sensor,
			b.Composition.Organic, b.Composition.Recyclable, b.Composition.Residual)
	}
	return nil
}

func init() {
	scanCmd.Flags().BoolVar(&scanRefresh, "refresh", false, "trigger a simulated sensor refresh")
	rootCmd.AddCommand(scanCmd)
}
