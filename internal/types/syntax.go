package types

// Syntax selects vendor-specific rendering at the renderer's extension
// points. Only paging clauses dispatch on it today; every other clause
// renders identically for all tags, and unrecognized tags behave as Any.
type Syntax string

const (
	Any      Syntax = "any"
	Postgres Syntax = "postgres"
	MySQL    Syntax = "mysql"
	SQLite   Syntax = "sqlite"
	MSSQL    Syntax = "mssql"
)
