package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wastewise/wastewise/internal/app"
	"github.com/wastewise/wastewise/internal/colors"
)

var (
	inboxFilter      string
	inboxMarkRead    string
	inboxMarkAllRead bool
	inboxDelete      string
)

// inboxCmd represents the inbox command
var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Show and manage notifications",
	Long: `Show and manage notifications.

USAGE:
    wastewise inbox [OPTIONS]

OPTIONS:
    --filter <tab>       Filter tab: all, unread, achievement, points (default: all)
    --mark-read <id>     Mark one notification as read
    --mark-all-read      Mark every notification as read
    --delete <id>        Delete a notification
    -h, --help           Show this help

EXAMPLES:
    wastewise inbox                   # Everything, with tab counts
    wastewise inbox --filter unread   # Unread only
    wastewise inbox --mark-read 2     # Mark one read`,
	RunE: runInbox,
}

func runInbox(cmd *cobra.Command, args []string) error {
	session, logger, err := newSession("inbox")
	if err != nil {
		return fmt.Errorf("inbox: %w", err)
	}
	defer func() {
		_ = session.Close()
		_ = logger.Shutdown()
	}()

	switch {
	case inboxMarkRead != "":
		if err := session.MarkRead(inboxMarkRead); err != nil {
			return fmt.Errorf("inbox: %w", err)
		}
		colors.Success(fmt.Sprintf("Notification %s marked as read", inboxMarkRead))
		return nil
	case inboxMarkAllRead:
		if err := session.MarkAllRead(); err != nil {
			return fmt.Errorf("inbox: %w", err)
		}
		colors.Success("All notifications marked as read")
		return nil
	case inboxDelete != "":
		if err := session.Remove(inboxDelete); err != nil {
			return fmt.Errorf("inbox: %w", err)
		}
		colors.Success(fmt.Sprintf("Notification %s deleted", inboxDelete))
		return nil
	}

	counts, err := session.InboxCounts()
	if err != nil {
		return fmt.Errorf("inbox: %w", err)
	}
	for i, tab := range app.InboxFilterTabs {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Printf("%s(%d)", tab, counts[tab])
	}
	fmt.Print("\n\n")

	notifs, err := session.Inbox(inboxFilter)
	if err != nil {
		return fmt.Errorf("inbox: %w", err)
	}
	if len(notifs) == 0 {
		fmt.Println("No notifications.")
		return nil
	}
	for _, n := range notifs {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s %-3s %-12s %-28s %s\n", marker, n.ID, n.Type, n.Title, n.Time)
	}
	return nil
}

func init() {
	inboxCmd.Flags().StringVar(&inboxFilter, "filter", "all", "filter tab")
	inboxCmd.Flags().StringVar(&inboxMarkRead, "mark-read", "", "mark a notification as read")
	inboxCmd.Flags().BoolVar(&inboxMarkAllRead, "mark-all-read", false, "mark all notifications as read")
	inboxCmd.Flags().StringVar(&inboxDelete, "delete", "", "delete a notification")
	rootCmd.AddCommand(inboxCmd)
}
