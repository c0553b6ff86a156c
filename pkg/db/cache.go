package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// insertURL inserts a URL if new and returns its url_id either way.
func (db *DB) insertURL(rawURL string) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", rawURL).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing URL: %w", err)
	}

	domain := ""
	if parsed, perr := url.Parse(rawURL); perr == nil {
		domain = parsed.Hostname()
	}

	result, err := db.Exec(`
		INSERT INTO urls (original_url, domain)
		VALUES (?, ?)
	`, rawURL, domain)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	return result.LastInsertId()
}

// Put stores the resolved title for a URL, replacing any earlier one.
func (db *DB) Put(rawURL, title, source, status string) error {
	urlID, err := db.insertURL(rawURL)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO titles (url_id, title, source, status, resolved_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(url_id) DO UPDATE SET
			title = excluded.title,
			source = excluded.source,
			status = excluded.status,
			resolved_at = excluded.resolved_at
	`, urlID, title, source, status)
	if err != nil {
		return fmt.Errorf("failed to store title: %w", err)
	}
	return nil
}

// Get returns the cached title for a URL if one exists and is younger
// than maxAge. A maxAge of zero accepts any age. The lookup is recorded
// in url_accesses either way.
func (db *DB) Get(rawURL string, maxAge time.Duration) (title, source string, ok bool) {
	var urlID int64
	var resolvedAt string
	err := db.QueryRow(`
		SELECT u.url_id, t.title, t.source, t.resolved_at
		FROM urls u
		JOIN titles t ON t.url_id = u.url_id
		WHERE u.original_url = ?
	`, rawURL).Scan(&urlID, &title, &source, &resolvedAt)
	if err != nil {
		return "", "", false
	}

	// SQLite stores CURRENT_TIMESTAMP as UTC text.
	ok = maxAge <= 0
	if !ok {
		if ts, perr := time.ParseInLocation("2006-01-02 15:04:05", resolvedAt, time.UTC); perr == nil {
			ok = time.Since(ts) <= maxAge
		}
	}
	db.recordAccess(urlID, ok)
	if !ok {
		return "", "", false
	}
	return title, source, true
}

func (db *DB) recordAccess(urlID int64, hit bool) {
	// Access log failures never block a lookup.
	_, _ = db.Exec(`
		INSERT INTO url_accesses (url_id, hit)
		VALUES (?, ?)
	`, urlID, hit)
}

// AccessCount returns how many lookups a URL has seen.
func (db *DB) AccessCount(rawURL string) (int64, error) {
	var n int64
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM url_accesses a
		JOIN urls u ON u.url_id = a.url_id
		WHERE u.original_url = ?
	`, rawURL).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count accesses: %w", err)
	}
	return n, nil
}
