package sqlfrag_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/sqlfrag"
)

func TestRender_SelectRaw(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.SelectRaw("id", "count(*)"),
	})

	expected := "select id, count(*)"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_SelectCols_BareNames(t *testing.T) {
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Select(emp.Col("id"), emp.Col("name")),
	})

	expected := "select id, name"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_SelectAs(t *testing.T) {
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.SelectAs(
			sqlfrag.ColAs(emp.Col("name"), "EmployeeName"),
			sqlfrag.ExprAs("count(*)", "Total"),
		),
	})

	expected := "select Employee.name as EmployeeName, count(*) as Total"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_From(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.From(sqlfrag.T("Employee")),
	})

	expected := "from Employee"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_From_WithAlias(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.From(sqlfrag.T("Employee", "e")),
	})

	expected := "from Employee e"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_FromRaw(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.FromRaw("Employee", "Organization"),
	})

	expected := "from Employee, Organization"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_WhereRaw(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.WhereRaw("id > 10"),
	})

	expected := "where id > 10"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Where_EmptyConditionProducesNoLine(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.SelectRaw("*"),
		sqlfrag.From(sqlfrag.T("Employee")),
		sqlfrag.Where(sqlfrag.And()),
	})

	expected := "select *\nfrom Employee"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_UpdateSet(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Update(sqlfrag.T("Employee")),
		sqlfrag.Set(sqlfrag.A("name", "@name"), sqlfrag.A("salary", "@salary")),
		sqlfrag.WhereRaw("Employee.id=@id"),
	})

	expected := "update Employee\nset name=@name, salary=@salary\nwhere Employee.id=@id"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_GroupByOrderBy(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.GroupBy("region", "team"),
		sqlfrag.OrderBy("name desc"),
	})

	expected := "group by region, team\norder by name desc"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Join_DefaultsToInner(t *testing.T) {
	org := sqlfrag.T("Organization")
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Join(org.Col("ID"), emp.Col("OrgID"), sqlfrag.T("OrgAlias"), ""),
	})

	expected := "inner join OrgAlias on Organization.ID=Employee.OrgID"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Join_KindChangesOnlyKeyword(t *testing.T) {
	org := sqlfrag.T("Organization")
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Join(org.Col("ID"), emp.Col("OrgID"), sqlfrag.T("OrgAlias"), "outer"),
	})

	expected := "outer join OrgAlias on Organization.ID=Employee.OrgID"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Join_AliasedTable(t *testing.T) {
	org := sqlfrag.T("Organization")
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Join(org.Col("ID"), emp.Col("OrgID"), sqlfrag.T("Organization", "o"), "left"),
	})

	expected := "left join Organization o on Organization.ID=Employee.OrgID"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Nest_Indentation(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Nest("root",
			sqlfrag.SelectRaw("*"),
			sqlfrag.FromRaw("User"),
		),
	})

	expected := "(\n    select *\n    from User\n) root"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Nest_CompoundsIndentation(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.SelectRaw("*"),
		sqlfrag.Nest("outer",
			sqlfrag.SelectRaw("*"),
			sqlfrag.Nest("inner",
				sqlfrag.SelectRaw("*"),
				sqlfrag.FromRaw("User"),
			),
		),
	})

	expected := strings.Join([]string{
		"select *",
		"(",
		"    select *",
		"    (",
		"        select *",
		"        from User",
		"    ) inner",
		") outer",
	}, "\n")
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Many_IsTransparent(t *testing.T) {
	a := sqlfrag.SelectRaw("*")
	b := sqlfrag.FromRaw("User")

	spliced := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{sqlfrag.Many(a, b)})
	flat := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{a, b})

	if spliced != flat {
		t.Errorf("Expected spliced render to equal flat render:\n%s\nGot:\n%s", flat, spliced)
	}
}

func TestRender_Many_DoesNotIndent(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Nest("t",
			sqlfrag.SelectRaw("*"),
			sqlfrag.Many(
				sqlfrag.FromRaw("User"),
				sqlfrag.WhereRaw("active=1"),
			),
		),
	})

	expected := "(\n    select *\n    from User\n    where active=1\n) t"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Skip_IsIdentity(t *testing.T) {
	a := sqlfrag.SelectRaw("*")
	b := sqlfrag.FromRaw("User")

	withSkip := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{a, sqlfrag.Skip(), b})
	without := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{a, b})

	if withSkip != without {
		t.Errorf("Expected skip to contribute nothing:\n%s\nGot:\n%s", without, withSkip)
	}
}

func TestRender_Skip_ConditionalConstruction(t *testing.T) {
	build := func(filtered bool) []sqlfrag.Fragment {
		where := sqlfrag.Fragment(sqlfrag.Skip())
		if filtered {
			where = sqlfrag.WhereRaw("active=1")
		}
		return []sqlfrag.Fragment{
			sqlfrag.SelectRaw("*"),
			sqlfrag.FromRaw("User"),
			where,
		}
	}

	filtered := sqlfrag.Render(sqlfrag.Any, build(true))
	if filtered != "select *\nfrom User\nwhere active=1" {
		t.Errorf("Unexpected filtered render:\n%s", filtered)
	}

	unfiltered := sqlfrag.Render(sqlfrag.Any, build(false))
	if unfiltered != "select *\nfrom User" {
		t.Errorf("Unexpected unfiltered render:\n%s", unfiltered)
	}
}

func TestRender_Raw_Multiline(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.SelectRaw("*"),
		sqlfrag.Raw("from User\nwhere id in (select id from Banned)"),
	})

	expected := "select *\nfrom User\nwhere id in (select id from Banned)"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Raw_InsideNestIsIndented(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Nest("t",
			sqlfrag.Raw("select *\nfrom User"),
		),
	})

	expected := "(\n    select *\n    from User\n) t"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Limit_AnySyntax(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Limit(10),
		sqlfrag.Offset(20),
	})

	expected := "limit 10\noffset 20"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_Limit_MSSQLSyntax(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.MSSQL, []sqlfrag.Fragment{
		sqlfrag.Offset(20),
		sqlfrag.Limit(10),
	})

	expected := "offset 20 rows\nfetch next 10 rows only"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_UnknownSyntaxFallsBackToAny(t *testing.T) {
	frags := []sqlfrag.Fragment{
		sqlfrag.SelectRaw("*"),
		sqlfrag.FromRaw("User"),
		sqlfrag.Limit(5),
	}

	unknown := sqlfrag.Render(sqlfrag.Syntax("oracle"), frags)
	any := sqlfrag.Render(sqlfrag.Any, frags)

	if unknown != any {
		t.Errorf("Expected unknown syntax to render as Any:\n%s\nGot:\n%s", any, unknown)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	emp := sqlfrag.T("Employee")
	frags := []sqlfrag.Fragment{
		sqlfrag.Select(emp.Col("id"), emp.Col("name")),
		sqlfrag.From(emp),
		sqlfrag.Where(sqlfrag.And(
			emp.Col("ColName").In("(@a)"),
			emp.Col("DataType").In("(@b,@c)"),
		)),
	}

	first := sqlfrag.Render(sqlfrag.Any, frags)
	second := sqlfrag.Render(sqlfrag.Any, frags)

	if first != second {
		t.Errorf("Expected identical renders, got:\n%s\nand:\n%s", first, second)
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	f1 := []sqlfrag.Fragment{sqlfrag.SelectRaw("*"), sqlfrag.FromRaw("User")}
	f2 := []sqlfrag.Fragment{sqlfrag.WhereRaw("active=1"), sqlfrag.OrderBy("name")}

	combined := sqlfrag.Render(sqlfrag.Any, append(append([]sqlfrag.Fragment{}, f1...), f2...))
	expected := sqlfrag.Render(sqlfrag.Any, f1) + "\n" + sqlfrag.Render(sqlfrag.Any, f2)

	if combined != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, combined)
	}
}

// Illegal SQL is a valid successful render: the renderer never validates.
func TestRender_DuplicateFromRendersBothLines(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.From(sqlfrag.T("Employee")),
		sqlfrag.From(sqlfrag.T("Organization")),
	})

	expected := "from Employee\nfrom Organization"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_EndToEndScenario(t *testing.T) {
	emp := sqlfrag.T("Employee")

	sql := sqlfrag.Render(sqlfrag.Any, []sqlfrag.Fragment{
		sqlfrag.Select(emp.Col("id"), emp.Col("name")),
		sqlfrag.From(emp),
		sqlfrag.Where(sqlfrag.And(
			emp.Col("ColName").In("(@a)"),
			emp.Col("DataType").In("(@b,@c)"),
		)),
	})

	expected := "select id, name\nfrom Employee\nwhere Employee.ColName in (@a) and Employee.DataType in (@b,@c)"
	if sql != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, sql)
	}
}

func TestRender_EmptySpec(t *testing.T) {
	sql := sqlfrag.Render(sqlfrag.Any, nil)
	if sql != "" {
		t.Errorf("Expected empty render, got: %q", sql)
	}
}
