package app

import (
	"errors"
	"fmt"

	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/storage"
)

// Inbox filter tab identifiers, in display order. "all" and "unread" are
// buckets over the read flag; the rest are notification types.
var InboxFilterTabs = []string{
	"all",
	"unread",
	domain.TypeAchievement.String(),
	domain.TypePoints.String(),
}

// Inbox returns the notifications visible under the given filter tab, in
// insertion order.
func (s *Session) Inbox(tab string) ([]domain.Notification, error) {
	switch tab {
	case "", "all":
		return s.inbox.List("", "")
	case "unread":
		return s.inbox.List("", domain.ReadBucketUnread)
	default:
		return s.inbox.List(tab, "")
	}
}

// InboxCounts returns the badge count for every declared filter tab.
func (s *Session) InboxCounts() (map[string]int, error) {
	all, err := s.inbox.List("", "")
	if err != nil {
		return nil, err
	}
	unread := 0
	for _, n := range all {
		if !n.Read {
			unread++
		}
	}
	counts := domain.Aggregate(all, func(n domain.Notification) string {
		return n.Category()
	}, domain.TypeAchievement.String(), domain.TypePoints.String())
	counts["all"] = len(all)
	counts["unread"] = unread
	return counts, nil
}

// ReadStatusCounts aggregates the inbox by read bucket.
func (s *Session) ReadStatusCounts() (map[string]int, error) {
	all, err := s.inbox.List("", "")
	if err != nil {
		return nil, err
	}
	return domain.Aggregate(all, domain.ReadBucket,
		domain.ReadBucketRead, domain.ReadBucketUnread), nil
}

// MarkRead marks one notification as read. Idempotent; an absent ID is a
// silent no-op.
func (s *Session) MarkRead(id string) error {
	err := s.inbox.MarkRead(id)
	if errors.Is(err, storage.ErrNotificationNotFound) {
		s.logger.Warn("mark read: unknown notification", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification as read. Idempotent.
func (s *Session) MarkAllRead() error {
	if err := s.inbox.MarkAllRead(); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

// Remove deletes one notification. Removing an absent ID is a silent
// no-op, which makes double-delete safe.
func (s *Session) Remove(id string) error {
	err := s.inbox.Delete(id)
	if errors.Is(err, storage.ErrNotificationNotFound) {
		s.logger.Warn("remove: unknown notification", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications.
func (s *Session) UnreadCount() (int, error) {
	return s.inbox.CountUnread()
}
