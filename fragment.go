package sqlfrag

import "github.com/zoobzio/sqlfrag/internal/types"

// SelectRaw creates a select list from caller-controlled text items.
func SelectRaw(items ...string) types.SelectRaw {
	return types.SelectRaw{Items: items}
}

// Select creates a select list from typed columns, rendered with bare
// column names.
func Select(cols ...types.Column) types.SelectCols {
	return types.SelectCols{Cols: cols}
}

// SelectAs creates a select list with per-item aliasing.
func SelectAs(items ...types.AliasedItem) types.SelectAs {
	return types.SelectAs{Items: items}
}

// ColAs creates an aliased select item from a typed column, rendered in
// qualified form.
func ColAs(col types.Column, alias string) types.AliasedItem {
	return types.AliasedItem{Col: &col, Alias: alias}
}

// ExprAs creates an aliased select item from raw expression text.
func ExprAs(expr, alias string) types.AliasedItem {
	return types.AliasedItem{Expr: expr, Alias: alias}
}

// From creates a single-table source clause.
func From(t types.Table) types.From {
	return types.From{Table: t}
}

// FromRaw creates a raw source clause.
func FromRaw(items ...string) types.FromRaw {
	return types.FromRaw{Items: items}
}

// Where creates a structured predicate clause. A condition that renders
// empty produces no output line.
func Where(cond types.ConditionItem) types.Where {
	return types.Where{Cond: cond}
}

// WhereRaw creates a raw predicate clause.
func WhereRaw(text string) types.WhereRaw {
	return types.WhereRaw{Text: text}
}

// Update creates an update target clause.
func Update(t types.Table) types.Update {
	return types.Update{Table: t}
}

// Set creates the assignment list of an update statement.
func Set(assigns ...types.Assign) types.Set {
	return types.Set{Assigns: assigns}
}

// A creates one "column=expression" assignment for Set. The expression is
// caller text, typically a parameter placeholder.
func A(column, expr string) types.Assign {
	return types.Assign{Column: column, Expr: expr}
}

// GroupBy creates a grouping clause from caller-controlled key text.
func GroupBy(keys ...string) types.GroupBy {
	return types.GroupBy{Keys: keys}
}

// OrderBy creates an ordering clause from caller-controlled key text.
func OrderBy(keys ...string) types.OrderBy {
	return types.OrderBy{Keys: keys}
}

// Join creates a join clause. An empty kind means inner; otherwise kind
// prefixes the join keyword ("left", "outer", ...). The ON comparison uses
// qualified column forms.
func Join(left, right types.Column, t types.Table, kind string) types.Join {
	return types.Join{Left: left, Right: right, Table: t, Kind: kind}
}

// Nest creates a parenthesized, indented sub-select bound to an alias.
func Nest(alias string, inner ...types.Fragment) types.Nest {
	return types.Nest{Alias: alias, Inner: inner}
}

// Many splices a fragment list inline, transparent to indentation. It is
// the mechanism for programmatically inlining repeated or conditionally
// included fragment groups without introducing a subquery boundary.
func Many(items ...types.Fragment) types.Many {
	return types.Many{Items: items}
}

// Skip creates a fragment that contributes nothing, so conditional
// construction can be expressed as a uniform list element.
func Skip() types.Skip {
	return types.Skip{}
}

// Raw creates an opaque clause from raw text. The text may span multiple
// lines and is emitted verbatim.
func Raw(text string) types.Raw {
	return types.Raw{Text: text}
}

// Limit creates a row-limit clause. Its spelling dispatches on the
// rendering Syntax.
func Limit(n int) types.Limit {
	return types.Limit{N: n}
}

// Offset creates a row-offset clause. Its spelling dispatches on the
// rendering Syntax.
func Offset(n int) types.Offset {
	return types.Offset{N: n}
}
