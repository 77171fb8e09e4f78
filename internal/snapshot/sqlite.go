package snapshot

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps every save in a local SQLite file, one row per save, so
// a keeper league keeps its draft history across seasons. The database is
// opened and closed around each operation.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store targeting the given database file
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, err
	}
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		saved_at INTEGER NOT NULL,
		data TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_session ON snapshots(session, id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init snapshot schema: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) Save(sessionID string, data []byte) (string, error) {
	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO snapshots (session, saved_at, data)
		VALUES (?, ?, ?)
	`, sessionID, time.Now().UnixMilli(), string(data))
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}
	return fmt.Sprintf("%s (session %s)", s.path, sessionID), nil
}

func (s *SQLiteStore) Load(sessionID string) ([]byte, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var data string
	if sessionID != "" {
		err = db.QueryRow(`
			SELECT data FROM snapshots WHERE session = ? ORDER BY id DESC LIMIT 1
		`, sessionID).Scan(&data)
	} else {
		err = db.QueryRow(`
			SELECT data FROM snapshots ORDER BY id DESC LIMIT 1
		`).Scan(&data)
	}
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no snapshot found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(data), nil
}
