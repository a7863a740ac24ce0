package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/knoldue/internal/domain"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a read-only connection to a flashcard database.
type DB struct {
	conn *sql.DB
}

// IsDatabase reports whether path names a SQLite deck by its extension.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Open opens the database at path in read-only mode. The file must already exist.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: db}, nil
}

// readOnlyDSN builds a file: URI for path. The path is made absolute and
// escaped so that '?', '#' and '%' in directory or file names are not read
// as URI syntax.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// LoadRecords returns every flashcard in insertion order.
// NULL columns are returned as absent fields.
func (db *DB) LoadRecords() ([]domain.Record, error) {
	rows, err := db.conn.Query(`
		SELECT question, next_review
		FROM flashcards ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flashcards: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			question   sql.NullString
			nextReview any
		)
		if err := rows.Scan(&question, &nextReview); err != nil {
			return nil, fmt.Errorf("failed to scan flashcard row: %w", err)
		}
		var r domain.Record
		if question.Valid {
			r.Question = domain.StringPtr(question.String)
		}
		r.NextReview = domain.FromSQL(nextReview)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flashcards: %w", err)
	}
	return records, nil
}
