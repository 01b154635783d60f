package domain

import "fmt"

// NotificationType categorizes inbox notifications for the filter tabs.
type NotificationType string

const (
	TypeAchievement NotificationType = "achievement"
	TypePoints      NotificationType = "points"
	TypeReminder    NotificationType = "reminder"
	TypeCommunity   NotificationType = "community"
	TypeReward      NotificationType = "reward"
	TypeSystem      NotificationType = "system"
)

// IsValid checks if the notification type is valid.
func (t NotificationType) IsValid() bool {
	switch t {
	case TypeAchievement, TypePoints, TypeReminder, TypeCommunity, TypeReward, TypeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t NotificationType) String() string {
	return string(t)
}

// ParseNotificationType parses a string into a NotificationType.
func ParseNotificationType(t string) (NotificationType, error) {
	nt := NotificationType(t)
	if !nt.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", t)
	}
	return nt, nil
}

// Read status bucket keys used by inbox aggregates.
const (
	ReadBucketRead   = "read"
	ReadBucketUnread = "unread"
)

// Notification is one entry in the user's inbox.
type Notification struct {
	ID      string
	Type    NotificationType
	Title   string
	Message string
	Time    string
	Read    bool
}

// ItemID returns the notification identifier.
func (n Notification) ItemID() string { return n.ID }

// Category returns the notification type tag.
func (n Notification) Category() string { return n.Type.String() }

// Status returns the read bucket the notification falls into.
func (n Notification) Status() string {
	if n.Read {
		return ReadBucketRead
	}
	return ReadBucketUnread
}

// SearchText returns the text matched by free-text search.
func (n Notification) SearchText() string { return n.Title + " " + n.Message }

// ReadBucket returns the aggregate bucket key for the notification.
func ReadBucket(n Notification) string { return n.Status() }

// Validate validates the notification and returns an error if invalid.
func (n Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification ID cannot be empty")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("invalid notification type: %s", n.Type)
	}
	if n.Title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}
	return nil
}
