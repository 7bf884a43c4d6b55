package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeLayout matches SQLite's CURRENT_TIMESTAMP so stored values sort and
// compare as text.
const timeLayout = "2006-01-02 15:04:05"

const (
	recentChatsLimit    = 20
	recentVisitorsLimit = 50
	topTopicsLimit      = 15
)

// Store wraps the sqlite database holding visitors, chats and contact
// submissions.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database in dataDir and runs pending migrations.
// Pass ":memory:" as dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "portfolio.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// One connection: avoids "database is locked" and keeps ":memory:" a
	// single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if dsn != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting journal mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the applied migration versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// --- Visitors ---

// RecordVisitor stores one page view.
func (s *Store) RecordVisitor(ctx context.Context, v Visitor) error {
	if v.HashedIP == "" {
		return errors.New("visitor hashed ip is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, formatTime(v.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// RecentVisitors returns up to limit page views, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp = parseTime(ts)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// --- Chat messages ---

// RecordChat stores one answered query and returns its id.
func (s *Store) RecordChat(ctx context.Context, m ChatMessage) (int64, error) {
	if m.SessionID == "" {
		return 0, errors.New("chat session id is required")
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_messages (session_id, query, topic, response, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.SessionID, m.Query, m.Topic, m.Response, formatTime(m.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("recording chat message: %w", err)
	}
	return res.LastInsertId()
}

// RecentChats returns up to limit chat messages, newest first.
func (s *Store) RecentChats(ctx context.Context, limit int) ([]ChatMessage, error) {
	return s.queryChats(ctx, `
		SELECT id, session_id, query, topic, response, created_at
		FROM chat_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
}

// SessionChats returns the messages of one session in the order they were asked.
func (s *Store) SessionChats(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	return s.queryChats(ctx, `
		SELECT id, session_id, query, topic, response, created_at
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC`, sessionID)
}

func (s *Store) queryChats(ctx context.Context, query string, args ...any) ([]ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []ChatMessage
	for rows.Next() {
		var m ChatMessage
		var ts string
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Query, &m.Topic, &m.Response, &ts); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.CreatedAt = parseTime(ts)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// DeleteChat removes one chat message.
func (s *Store) DeleteChat(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM chat_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting chat message %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Contact messages ---

// RecordContact stores a contact submission as undelivered and returns its id.
func (s *Store) RecordContact(ctx context.Context, m ContactMessage) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, message, delivered, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Message, m.Delivered, formatTime(m.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("recording contact message: %w", err)
	}
	return res.LastInsertId()
}

// MarkContactDelivered flags a contact submission as mailed.
func (s *Store) MarkContactDelivered(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE contact_messages SET delivered = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking contact %d delivered: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecentContacts returns up to limit contact submissions, newest first.
func (s *Store) RecentContacts(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, delivered, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var ts string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Delivered, &ts); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		m.CreatedAt = parseTime(ts)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// --- Aggregates ---

// Stats computes dashboard totals relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?", []any{formatTime(dayStart)}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE timestamp >= ?", []any{formatTime(weekAgo)}},
		{&stats.TotalChats, "SELECT COUNT(*) FROM chat_messages", nil},
		{&stats.ChatSessions, "SELECT COUNT(DISTINCT session_id) FROM chat_messages", nil},
		{&stats.TotalContacts, "SELECT COUNT(*) FROM contact_messages", nil},
		{&stats.UndeliveredContacts, "SELECT COUNT(*) FROM contact_messages WHERE delivered = 0", nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("computing stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT topic, COUNT(*) AS n
		FROM chat_messages
		GROUP BY topic
		ORDER BY n DESC, topic ASC
		LIMIT ?`, topTopicsLimit)
	if err != nil {
		return nil, fmt.Errorf("computing topic counts: %w", err)
	}
	for rows.Next() {
		var tc TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning topic count: %w", err)
		}
		stats.TopTopics = append(stats.TopTopics, tc)
	}
	// Release the only connection before the follow-up queries.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.RecentChats, err = s.RecentChats(ctx, recentChatsLimit); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, recentVisitorsLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

// Cleanup deletes visitors and chat messages recorded before cutoff.
// Contact submissions are kept.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (CleanupResult, error) {
	var result CleanupResult
	ts := formatTime(cutoff)

	res, err := s.db.ExecContext(ctx, "DELETE FROM visitors WHERE timestamp < ?", ts)
	if err != nil {
		return result, fmt.Errorf("cleaning visitors: %w", err)
	}
	result.Visitors, _ = res.RowsAffected()

	res, err = s.db.ExecContext(ctx, "DELETE FROM chat_messages WHERE created_at < ?", ts)
	if err != nil {
		return result, fmt.Errorf("cleaning chat messages: %w", err)
	}
	result.Chats, _ = res.RowsAffected()
	return result, nil
}
