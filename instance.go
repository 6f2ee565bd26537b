package sqlfrag

import (
	"fmt"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqlfrag/internal/types"
)

// Instance is a schema-aware constructor set backed by a DBML project.
// Its T and C reject references to tables and columns absent from the
// schema; the plain package-level constructors never consult one. The
// renderer itself is schema-free either way.
type Instance struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column
}

// NewFromDBML creates an Instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	in := &Instance{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		in.tables[table.Name] = table
		in.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			in.columns[table.Name][col.Name] = col
		}
	}

	return in, nil
}

// TryT creates a table reference, returning an error if the table is not
// part of the schema.
func (in *Instance) TryT(name string, alias ...string) (types.Table, error) {
	if _, ok := in.tables[name]; !ok {
		return types.Table{}, fmt.Errorf("table '%s' not found in schema", name)
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a schema-checked table reference.
func (in *Instance) T(name string, alias ...string) types.Table {
	t, err := in.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a column reference scoped to t, returning an error if the
// column is not part of t's table in the schema.
func (in *Instance) TryC(t types.Table, column string) (types.Column, error) {
	cols, ok := in.columns[t.Name]
	if !ok {
		return types.Column{}, fmt.Errorf("table '%s' not found in schema", t.Name)
	}
	if _, ok := cols[column]; !ok {
		return types.Column{}, fmt.Errorf("column '%s' not found in table '%s'", column, t.Name)
	}
	return t.Col(column), nil
}

// C creates a schema-checked column reference scoped to t.
func (in *Instance) C(t types.Table, column string) types.Column {
	col, err := in.TryC(t, column)
	if err != nil {
		panic(err)
	}
	return col
}
