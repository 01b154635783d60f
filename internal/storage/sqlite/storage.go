// Package sqlite provides a SQLite-backed inbox store.
// The database is opened in memory, so its lifetime is the session's.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/storage"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	time TEXT NOT NULL,
	read INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_notifications_seq ON notifications(seq);
`

// InboxStore implements storage.InboxStore using SQLite.
type InboxStore struct {
	db *sql.DB
}

// NewInboxStore opens a session-local in-memory inbox store.
func NewInboxStore() (*InboxStore, error) {
	return newStore(":memory:")
}

// NewInboxStoreAt opens an inbox store at the provided DSN. Used by tests
// that need isolated databases.
func NewInboxStoreAt(dsn string) (*InboxStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite inbox: dsn cannot be empty")
	}
	return newStore(dsn)
}

func newStore(dsn string) (*InboxStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite inbox: open db: %w", err)
	}
	// The in-memory database disappears when the last connection closes.
	db.SetMaxOpenConns(1)

	store := &InboxStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *InboxStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite inbox: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite inbox: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *InboxStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Seed loads the initial notification catalog in insertion order.
func (s *InboxStore) Seed(notifs []domain.Notification) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite inbox: begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, n := range notifs {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("sqlite inbox: seed: %w", err)
		}
		read := 0
		if n.Read {
			read = 1
		}
		_, err := tx.Exec(
			"INSERT INTO notifications (id, seq, type, title, message, time, read) VALUES (?, ?, ?, ?, ?, ?, ?)",
			n.ID, i, n.Type.String(), n.Title, n.Message, n.Time, read,
		)
		if err != nil {
			return fmt.Errorf("sqlite inbox: seed insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite inbox: commit seed: %w", err)
	}
	return nil
}

// List returns notifications in insertion order with optional filters.
func (s *InboxStore) List(typeFilter, readFilter string) ([]domain.Notification, error) {
	query := "SELECT id, type, title, message, time, read FROM notifications"
	var conds []string
	var args []any

	if typeFilter != "" && typeFilter != "all" {
		if _, err := domain.ParseNotificationType(typeFilter); err != nil {
			return nil, fmt.Errorf("sqlite inbox: list: %w", err)
		}
		conds = append(conds, "type = ?")
		args = append(args, typeFilter)
	}
	switch readFilter {
	case "":
	case domain.ReadBucketRead:
		conds = append(conds, "read = 1")
	case domain.ReadBucketUnread:
		conds = append(conds, "read = 0")
	default:
		return nil, fmt.Errorf("sqlite inbox: invalid read filter: %s", readFilter)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY seq"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite inbox: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notifs []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifs = append(notifs, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite inbox: list rows: %w", err)
	}
	return notifs, nil
}

// GetByID retrieves a notification by its ID.
func (s *InboxStore) GetByID(id string) (*domain.Notification, error) {
	if strings.TrimSpace(id) == "" {
		return nil, storage.ErrInvalidNotificationID
	}
	row := s.db.QueryRow("SELECT id, type, title, message, time, read FROM notifications WHERE id = ?", id)
	n, err := scanNotification(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite inbox: get %s: %w", id, storage.ErrNotificationNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead marks a notification as read. Marking a read notification
// again is a no-op.
func (s *InboxStore) MarkRead(id string) error {
	if strings.TrimSpace(id) == "" {
		return storage.ErrInvalidNotificationID
	}
	res, err := s.db.Exec("UPDATE notifications SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("sqlite inbox: mark read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite inbox: mark read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite inbox: mark read %s: %w", id, storage.ErrNotificationNotFound)
	}
	return nil
}

// MarkAllRead marks every notification as read.
func (s *InboxStore) MarkAllRead() error {
	if _, err := s.db.Exec("UPDATE notifications SET read = 1"); err != nil {
		return fmt.Errorf("sqlite inbox: mark all read: %w", err)
	}
	return nil
}

// Delete removes a notification by ID.
func (s *InboxStore) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return storage.ErrInvalidNotificationID
	}
	res, err := s.db.Exec("DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("sqlite inbox: delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite inbox: delete rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite inbox: delete %s: %w", id, storage.ErrNotificationNotFound)
	}
	return nil
}

// CountUnread returns the number of unread notifications.
func (s *InboxStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM notifications WHERE read = 0").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("sqlite inbox: count unread: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (domain.Notification, error) {
	var n domain.Notification
	var typ string
	var read int
	if err := row.Scan(&n.ID, &typ, &n.Title, &n.Message, &n.Time, &read); err != nil {
		if err == sql.ErrNoRows {
			return domain.Notification{}, err
		}
		return domain.Notification{}, fmt.Errorf("sqlite inbox: scan: %w", err)
	}
	n.Type = domain.NotificationType(typ)
	n.Read = read == 1
	return n, nil
}
