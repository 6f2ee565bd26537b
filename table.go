package sqlfrag

import "github.com/zoobzio/sqlfrag/internal/types"

// T creates a table reference, optionally aliased. No schema is consulted;
// use Instance.T for schema-checked construction.
func T(name string, alias ...string) types.Table {
	t := types.Table{Name: name}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}
