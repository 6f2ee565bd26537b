// Package testing provides test utilities for sqlfrag.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/sqlfrag"
)

// TestInstance creates a schema-backed sqlfrag instance for testing.
// Includes Employee, Organization, and Project tables.
func TestInstance(t *testing.T) *sqlfrag.Instance {
	t.Helper()

	project := dbml.NewProject("test")

	employees := dbml.NewTable("Employee")
	employees.AddColumn(dbml.NewColumn("ID", "bigint"))
	employees.AddColumn(dbml.NewColumn("Name", "varchar"))
	employees.AddColumn(dbml.NewColumn("Salary", "numeric"))
	employees.AddColumn(dbml.NewColumn("OrgID", "bigint"))
	employees.AddColumn(dbml.NewColumn("ColName", "varchar"))
	employees.AddColumn(dbml.NewColumn("DataType", "varchar"))
	project.AddTable(employees)

	organizations := dbml.NewTable("Organization")
	organizations.AddColumn(dbml.NewColumn("ID", "bigint"))
	organizations.AddColumn(dbml.NewColumn("Name", "varchar"))
	organizations.AddColumn(dbml.NewColumn("Region", "varchar"))
	project.AddTable(organizations)

	projects := dbml.NewTable("Project")
	projects.AddColumn(dbml.NewColumn("ID", "bigint"))
	projects.AddColumn(dbml.NewColumn("Title", "varchar"))
	projects.AddColumn(dbml.NewColumn("OwnerID", "bigint"))
	project.AddTable(projects)

	instance, err := sqlfrag.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}

	return instance
}
