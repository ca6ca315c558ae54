package engine

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver with the
// region functions registered.
//
// For file-based databases, pass a path like "./points.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterRegionFunctions(nil); err != nil {
		return nil, fmt.Errorf("engine: failed to register functions: %w", err)
	}
	return sql.Open("sqlite", dsn)
}
