package snapshot

import (
	"fmt"
	"os"
)

// Store persists snapshot bytes. Implementations hold configuration only;
// the underlying file or connection is acquired and released inside each
// call, so no handle outlives an operation.
type Store interface {
	// Save persists the snapshot under the session ID and returns a
	// human-readable location for display
	Save(sessionID string, data []byte) (string, error)
	// Load returns the most recent snapshot for the session; an empty
	// session ID loads the most recent snapshot of any session
	Load(sessionID string) ([]byte, error)
}

// FromEnv selects the store driver from SNAPSHOT_DRIVER, defaulting to the
// flat JSON file the tool has always written.
//
//	file     SNAPSHOT_FILE (default draft_state.json)
//	sqlite   SNAPSHOT_DB (default draft_history.sqlite)
//	postgres DATABASE_URL (required)
func FromEnv() (Store, error) {
	driver := os.Getenv("SNAPSHOT_DRIVER")
	if driver == "" {
		driver = "file"
	}
	switch driver {
	case "file":
		path := os.Getenv("SNAPSHOT_FILE")
		if path == "" {
			path = "draft_state.json"
		}
		return NewFileStore(path), nil
	case "sqlite":
		path := os.Getenv("SNAPSHOT_DB")
		if path == "" {
			path = "draft_history.sqlite"
		}
		return NewSQLiteStore(path), nil
	case "postgres":
		conn := os.Getenv("DATABASE_URL")
		if conn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres snapshot driver")
		}
		return NewPostgresStore(conn), nil
	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_DRIVER %q (valid: file, sqlite, postgres)", driver)
	}
}
