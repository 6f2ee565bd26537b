// Package dialect holds the vendor-specific spellings the renderer
// dispatches on. Only paging clauses vary today.
package dialect

import "github.com/zoobzio/sqlfrag/internal/types"

// Paging describes how a dialect spells row-limit and row-offset clauses.
// Both fields are fmt templates taking the row count as %d.
type Paging struct {
	Limit  string
	Offset string
}

// For returns the paging spelling for a syntax tag. Unrecognized tags fall
// back to the Any behavior.
func For(s types.Syntax) Paging {
	switch s {
	case types.MSSQL:
		// T-SQL has no LIMIT keyword; OFFSET/FETCH is the paging form,
		// and FETCH requires an OFFSET clause before it.
		return Paging{Limit: "fetch next %d rows only", Offset: "offset %d rows"}
	default:
		return Paging{Limit: "limit %d", Offset: "offset %d"}
	}
}
