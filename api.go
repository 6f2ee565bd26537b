// Package sqlfrag composes SQL statements from typed fragments.
//
// A query is an ordered sequence of Fragment values (a "query spec"):
// clauses, conditions, joins, nested sub-selects, raw text blocks, and the
// structural Many/Skip combinators. Render serializes the sequence to
// literal SQL text for a target Syntax, one clause per line:
//
//	emp := sqlfrag.T("Employee")
//
//	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
//		sqlfrag.Select(emp.Col("id"), emp.Col("name")),
//		sqlfrag.From(emp),
//		sqlfrag.Where(sqlfrag.And(
//			emp.Col("ColName").In("(@a)"),
//			emp.Col("DataType").In("(@b,@c)"),
//		)),
//	})
//	// select id, name
//	// from Employee
//	// where Employee.ColName in (@a) and Employee.DataType in (@b,@c)
//
// Fragments are immutable value trees; specs compose by plain slice
// manipulation, and rendering is a pure function safe for concurrent use.
//
// # No validation
//
// The renderer never checks that a spec forms legal SQL: a sequence with
// two From fragments renders two from lines without complaint, and raw
// text passes through untouched. Garbage in, garbage out, deterministically.
// Callers rely on this to emit intentionally unusual SQL; do not add
// validation here. Schema-checked construction is available separately
// through Instance (DBML-backed), and quoted Equals values are wrapped in
// single quotes without escaping: this layer is a text generator, not a
// safety boundary.
//
// # Parameters and execution
//
// Rendered text may carry named placeholders such as @name. The exec
// package binds them and runs statements against PostgreSQL (pgx), MySQL,
// SQLite, and SQL Server.
package sqlfrag

import "github.com/zoobzio/sqlfrag/internal/types"

// Table represents a table reference, optionally aliased.
type Table = types.Table

// Column represents a column reference scoped to a table.
type Column = types.Column

// ConditionItem represents one node of a boolean condition tree.
type ConditionItem = types.ConditionItem

// Fragment represents one typed piece of a SQL statement.
type Fragment = types.Fragment

// AliasedItem is one entry of a SelectAs list.
type AliasedItem = types.AliasedItem

// Assign is one "column=expression" pair of a Set clause.
type Assign = types.Assign

// Syntax selects vendor-specific rendering at the renderer's extension
// points.
type Syntax = types.Syntax

// Re-export syntax tags for public API.
const (
	Any      = types.Any
	Postgres = types.Postgres
	MySQL    = types.MySQL
	SQLite   = types.SQLite
	MSSQL    = types.MSSQL
)
