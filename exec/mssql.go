package exec

import (
	"database/sql"

	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver
)

// OpenMSSQL opens a SQL Server connection. T-SQL accepts @name parameters
// directly, so placeholders stay in place and values bind via sql.Named.
func OpenMSSQL(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, err
	}
	return NewDB(conn, StyleNamed), nil
}
