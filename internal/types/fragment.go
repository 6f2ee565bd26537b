package types

// Fragment represents one typed piece of a SQL statement: a clause, a join,
// a parenthesized sub-select, raw text, or a structural splice/no-op.
// A query spec is an ordered []Fragment; order mirrors final clause order.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Fragment interface {
	IsFragment()
}

// SelectRaw is a select list over caller-controlled text items.
type SelectRaw struct {
	Items []string
}

// SelectCols is a select list over typed columns, rendered with bare names.
type SelectCols struct {
	Cols []Column
}

// AliasedItem is one entry of a SelectAs list: either a typed column
// (rendered qualified) or caller expression text, plus its alias.
type AliasedItem struct {
	Col   *Column
	Expr  string
	Alias string
}

// SelectAs is a select list with per-item aliasing.
type SelectAs struct {
	Items []AliasedItem
}

// From is a single-table source clause.
type From struct {
	Table Table
}

// FromRaw is a raw source clause over caller-controlled text items.
type FromRaw struct {
	Items []string
}

// Where is a structured predicate clause.
type Where struct {
	Cond ConditionItem
}

// WhereRaw is a raw predicate clause.
type WhereRaw struct {
	Text string
}

// Update is an update target clause.
type Update struct {
	Table Table
}

// Assign is one "column=expression" pair of a Set clause. The expression
// is caller text, typically a parameter placeholder or literal.
type Assign struct {
	Column string
	Expr   string
}

// Set is the assignment list of an update statement.
type Set struct {
	Assigns []Assign
}

// GroupBy holds grouping keys as caller text.
type GroupBy struct {
	Keys []string
}

// OrderBy holds ordering keys as caller text.
type OrderBy struct {
	Keys []string
}

// Join is a join clause. Kind is the join keyword prefix ("left", "outer",
// ...); empty means inner. The ON comparison uses qualified column forms.
type Join struct {
	Left  Column
	Right Column
	Table Table
	Kind  string
}

// Nest is a parenthesized, indented sub-select bound to an alias. The inner
// sequence is owned exclusively by this fragment.
type Nest struct {
	Alias string
	Inner []Fragment
}

// Many splices a fragment list inline: children render against the same
// indentation context as the splice itself, with no subquery boundary.
type Many struct {
	Items []Fragment
}

// Skip contributes nothing to output. It exists so conditional construction
// can be expressed as a uniform list element.
type Skip struct{}

// Raw is the opaque escape hatch at clause granularity. Text may span
// multiple lines and is emitted verbatim.
type Raw struct {
	Text string
}

// Limit is a row-limit clause. Its spelling is dialect-dependent.
type Limit struct {
	N int
}

// Offset is a row-offset clause. Its spelling is dialect-dependent.
type Offset struct {
	N int
}

// Implement Fragment interface.
func (SelectRaw) IsFragment()  {}
func (SelectCols) IsFragment() {}
func (SelectAs) IsFragment()   {}
func (From) IsFragment()       {}
func (FromRaw) IsFragment()    {}
func (Where) IsFragment()      {}
func (WhereRaw) IsFragment()   {}
func (Update) IsFragment()     {}
func (Set) IsFragment()        {}
func (GroupBy) IsFragment()    {}
func (OrderBy) IsFragment()    {}
func (Join) IsFragment()       {}
func (Nest) IsFragment()       {}
func (Many) IsFragment()       {}
func (Skip) IsFragment()       {}
func (Raw) IsFragment()        {}
func (Limit) IsFragment()      {}
func (Offset) IsFragment()     {}
