package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wastewise v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
