package types

// Table represents a table reference, optionally aliased.
// Two Tables naming the same physical table are distinct references,
// which is what makes self-joins via aliasing work.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Table struct {
	Name  string
	Alias string
}

// Column represents a column reference scoped to a table.
type Column struct {
	Table Table
	Name  string
}

// Col constructs a column reference scoped to this table.
// No schema is consulted; the reference is purely syntactic.
func (t Table) Col(name string) Column {
	return Column{Table: t, Name: name}
}

// Qualified returns the "Table.Column" form. The table's literal name is
// used even when an alias is set.
func (c Column) Qualified() string {
	return c.Table.Name + "." + c.Name
}

// Bare returns the unqualified column name.
func (c Column) Bare() string {
	return c.Name
}
