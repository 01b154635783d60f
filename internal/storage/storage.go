// Package storage provides the inbox store interface for WasteWise.
// Implementations hold session-scoped state only; nothing survives the
// process.
package storage

import (
	"errors"

	"github.com/wastewise/wastewise/internal/domain"
)

var (
	// ErrInvalidNotificationID indicates an empty notification ID.
	ErrInvalidNotificationID = errors.New("invalid notification ID")
	// ErrNotificationNotFound indicates that a notification cannot be found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// InboxStore defines the interface for inbox notification storage.
type InboxStore interface {
	// Seed loads the initial catalog into the store. Called once at
	// session start.
	Seed(notifs []domain.Notification) error

	// List returns notifications in insertion order, optionally filtered
	// by type ("" or "all" for every type) and read state ("", "read" or
	// "unread").
	List(typeFilter, readFilter string) ([]domain.Notification, error)

	// GetByID retrieves a notification by its ID.
	GetByID(id string) (*domain.Notification, error)

	// MarkRead marks a notification as read. Idempotent.
	MarkRead(id string) error

	// MarkAllRead marks every notification as read. Idempotent.
	MarkAllRead() error

	// Delete removes a notification. Deleting an absent ID returns
	// ErrNotificationNotFound; callers wanting silent-miss semantics
	// handle it at the boundary.
	Delete(id string) error

	// CountUnread returns the number of unread notifications.
	CountUnread() (int, error)

	// Close releases the store's resources.
	Close() error
}
