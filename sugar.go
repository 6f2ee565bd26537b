package sqlfrag

import "github.com/zoobzio/sqlfrag/internal/types"

// SelectFrom builds the common "select columns from table" shape as a
// single spliced fragment. Column names render bare.
func SelectFrom(t types.Table, cols ...string) types.Many {
	refs := make([]types.Column, 0, len(cols))
	for _, name := range cols {
		refs = append(refs, t.Col(name))
	}
	return Many(Select(refs...), From(t))
}

// SelectFromQualified is SelectFrom with the select list rendered in
// qualified form, for specs whose sources carry colliding column names.
func SelectFromQualified(t types.Table, cols ...string) types.Many {
	items := make([]string, 0, len(cols))
	for _, name := range cols {
		items = append(items, t.Col(name).Qualified())
	}
	return Many(SelectRaw(items...), From(t))
}
