package exec

import (
	"database/sql"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// OpenSQLite opens a SQLite database with the pure-Go modernc driver,
// wired for question-mark binding. Use ":memory:" for an in-process
// database.
func OpenSQLite(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return NewDB(conn, StyleQuestion), nil
}
