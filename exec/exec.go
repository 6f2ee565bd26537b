// Package exec binds and executes rendered statements.
//
// sqlfrag renders named placeholders such as @name verbatim; this package
// recognizes them, rewrites them for the target driver's binding style,
// and runs the statement. It is the execution-layer counterpart to the
// pure renderer: all runtime failures (syntax errors, type mismatches,
// missing parameter values) surface here, never during rendering.
package exec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Style selects how @name placeholders are rewritten for a driver.
type Style int

const (
	// StyleNamed keeps @name and binds values with sql.Named (SQL Server).
	StyleNamed Style = iota
	// StyleDollar rewrites to $1, $2, ... (PostgreSQL wire drivers).
	StyleDollar
	// StyleQuestion rewrites to ? (MySQL, SQLite).
	StyleQuestion
)

// MissingParamError indicates a rendered placeholder with no bound value.
type MissingParamError struct {
	Name string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("no value bound for parameter @%s", e.Name)
}

// Bind rewrites the @name placeholders in a rendered statement and builds
// the driver argument list. Placeholders inside single-quoted string
// literals are left untouched. A name appearing more than once binds a
// single argument under StyleNamed and StyleDollar, and one argument per
// occurrence under StyleQuestion.
func Bind(style Style, query string, params map[string]any) (string, []any, error) {
	var out strings.Builder
	var args []any
	bound := make(map[string]int) // name -> 1-based argument index

	for i := 0; i < len(query); i++ {
		ch := query[i]

		if ch == '\'' {
			j := i + 1
			for j < len(query) && query[j] != '\'' {
				j++
			}
			if j < len(query) {
				j++
			}
			out.WriteString(query[i:j])
			i = j - 1
			continue
		}

		if ch != '@' {
			out.WriteByte(ch)
			continue
		}

		start := i + 1
		j := start
		for j < len(query) && isIdentByte(query[j]) {
			j++
		}
		if j == start {
			// Bare @ with no identifier passes through.
			out.WriteByte(ch)
			continue
		}

		name := query[start:j]
		value, ok := params[name]
		if !ok {
			return "", nil, MissingParamError{Name: name}
		}

		switch style {
		case StyleDollar:
			idx, seen := bound[name]
			if !seen {
				args = append(args, value)
				idx = len(args)
				bound[name] = idx
			}
			fmt.Fprintf(&out, "$%d", idx)
		case StyleQuestion:
			args = append(args, value)
			out.WriteByte('?')
		default:
			if _, seen := bound[name]; !seen {
				args = append(args, sql.Named(name, value))
				bound[name] = len(args)
			}
			out.WriteString("@")
			out.WriteString(name)
		}

		i = j - 1
	}

	return out.String(), args, nil
}

func isIdentByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// DB executes rendered statements against a database/sql connection with a
// fixed placeholder style.
type DB struct {
	conn  *sql.DB
	style Style
}

// NewDB wraps an open connection. Use the Open* helpers for the common
// driver/style pairings.
func NewDB(conn *sql.DB, style Style) *DB {
	return &DB{conn: conn, style: style}
}

// Query binds params into query and runs it, returning the result rows.
func (d *DB) Query(ctx context.Context, query string, params map[string]any) (*sql.Rows, error) {
	q, args, err := Bind(d.style, query, params)
	if err != nil {
		return nil, err
	}
	return d.conn.QueryContext(ctx, q, args...)
}

// Exec binds params into query and runs it, returning the driver result.
func (d *DB) Exec(ctx context.Context, query string, params map[string]any) (sql.Result, error) {
	q, args, err := Bind(d.style, query, params)
	if err != nil {
		return nil, err
	}
	return d.conn.ExecContext(ctx, q, args...)
}

// Unwrap returns the underlying connection.
func (d *DB) Unwrap() *sql.DB {
	return d.conn
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
