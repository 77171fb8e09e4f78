package snapshot

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore keeps saves in a shared Postgres database for leagues that
// run a home server. Connections are opened and closed around each
// operation; nothing is held between commands.
type PostgresStore struct {
	connString string
}

// NewPostgresStore returns a store using the given connection string
func NewPostgresStore(connString string) *PostgresStore {
	return &PostgresStore{connString: connString}
}

func (s *PostgresStore) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connString)
	if err != nil {
		return nil, err
	}
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id BIGSERIAL PRIMARY KEY,
		session TEXT NOT NULL,
		saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		data TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init snapshot schema: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Save(sessionID string, data []byte) (string, error) {
	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO snapshots (session, data)
		VALUES ($1, $2)
	`, sessionID, string(data))
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}
	return fmt.Sprintf("postgres (session %s)", sessionID), nil
}

func (s *PostgresStore) Load(sessionID string) ([]byte, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var data string
	if sessionID != "" {
		err = db.QueryRow(`
			SELECT data FROM snapshots WHERE session = $1 ORDER BY id DESC LIMIT 1
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
