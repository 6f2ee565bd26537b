package sqlfrag

import "github.com/zoobzio/sqlfrag/internal/types"

// Eq creates a quoted equality condition. Equivalent to col.Eq(value).
func Eq(col types.Column, value string) types.Equals {
	return col.Eq(value)
}

// EqP creates an unquoted equality condition for parameter placeholders.
// Equivalent to col.EqP(value).
func EqP(col types.Column, value string) types.Equals {
	return col.EqP(value)
}

// In creates a set membership condition over a raw set expression such as
// "(@a,@b)" or "(1,2,3)". The set text is never parsed.
func In(col types.Column, set string) types.In {
	return col.In(set)
}

// And creates a condition group joined with "and". An empty group is legal
// and renders to the empty string.
func And(items ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic: types.AND,
		Items: items,
	}
}

// Or creates a condition group joined with "or". An empty group is legal
// and renders to the empty string.
func Or(items ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic: types.OR,
		Items: items,
	}
}

// CondRaw creates an opaque predicate from raw text.
func CondRaw(text string) types.CondRaw {
	return types.CondRaw{Text: text}
}
