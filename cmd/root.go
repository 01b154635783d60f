// Package cmd implements the wastewise CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/app"
	"github.com/wastewise/wastewise/internal/colors"
	"github.com/wastewise/wastewise/internal/config"
	"github.com/wastewise/wastewise/internal/logging"
	"github.com/wastewise/wastewise/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wastewise",
	Short: "Facility waste management companion: bins, points, training.",
	Long:  `Facility waste management companion: bins, points, training.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})
}

// newSession loads config, wires logging and opens a fresh session.
func newSession(command string) (*app.Session, logging.Logger, error) {
	cfg := config.Load()
	logger, err := logging.Init(logging.Config{
		Enabled:  cfg.LogEnabled,
		Level:    cfg.LogLevel,
		MaxFiles: 10,
		Command:  command,
	})
	if err != nil {
		// Logging failures must not block the command.
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
		logger = logging.Noop()
	}
	colors.SetLogger(logger)

	session, err := app.NewSession(app.Options{
		StartingBalance: &cfg.StartingBalance,
		NoticeTTL:       cfg.NoticeTTL(),
		RichNoticeTTL:   cfg.RichNoticeTTL(),
		ScanDelay:       cfg.ScanDelay(),
		PassThreshold:   cfg.PassThreshold,
		Logger:          logger,
	})
	if err != nil {
		_ = logger.Shutdown()
		return nil, nil, err
	}
	return session, logger, nil
}

// printNotice renders the session's visible notice, if any, the way the
// commands report action outcomes.
func printNotice(session *app.Session) {
	n := session.Notice()
	if n == nil {
		return
	}
	line := n.Title
	if n.Message != "" {
		line += ": " + n.Message
	}
	if n.HasPoints {
		line += fmt.Sprintf(" (remaining: %d points)", n.Points)
	}
	if n.Kind == "success" {
		colors.Success(line)
		return
	}
	colors.Error(line)
}

func printHelpText(cmd *cobra.Command) {
	// Order of commands as shown in help output
	commandOrder := []string{
		"bins",
		"market",
		"inbox",
		"community",
		"education",
		"quiz",
		"scan",
		"stats",
		"tui",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`wastewise v%s

Facility waste management companion: bins, points, training.

USAGE:
    wastewise [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.Version, strings.Join(cmdLines, "\n"))
	fmt.Print(helpText)
}
