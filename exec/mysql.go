package exec

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
)

// OpenMySQL opens a MySQL/MariaDB connection wired for question-mark
// binding.
func OpenMySQL(dsn string) (*DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return NewDB(conn, StyleQuestion), nil
}
