package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/tui/state"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal UI for the facility dashboard",
	Long: `Interactive terminal UI for the facility dashboard.

USAGE:
    wastewise tui

KEY BINDINGS:
    tab/shift+tab  Cycle pages
    1-5            Jump to a page
    j/k            Move up/down in the list
    f              Cycle the page filter
    /              Enter search mode
    ESC            Exit search mode
    x              Dismiss the visible notice
    q              Quit TUI

PAGE ACTIONS:
    bins           p pickup, m maintenance, s refresh
    market         e exchange
    inbox          r mark read, R mark all read, d delete
    community      l like
    education      b book`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("tui")
	if err != nil {
		return err
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	p := tea.NewProgram(
		state.NewModel(session),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
