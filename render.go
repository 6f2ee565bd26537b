package sqlfrag

import (
	"fmt"
	"strings"

	"github.com/zoobzio/sqlfrag/internal/dialect"
	"github.com/zoobzio/sqlfrag/internal/types"
)

// indentUnit is the fixed indentation applied per nesting level.
const indentUnit = "    "

// Render serializes a query spec to SQL text for the given syntax.
//
// Each fragment renders to zero or more lines; non-empty outputs are
// joined with newlines in input order. Render is total and performs no
// validation: a malformed spec renders to malformed SQL, deterministically.
func Render(syntax Syntax, frags []Fragment) string {
	return strings.Join(renderFragments(syntax, frags), "\n")
}

func renderFragments(syntax types.Syntax, frags []types.Fragment) []string {
	var lines []string
	for _, f := range frags {
		lines = append(lines, renderFragment(syntax, f)...)
	}
	return lines
}

func renderFragment(syntax types.Syntax, frag types.Fragment) []string {
	switch f := frag.(type) {
	case types.SelectRaw:
		return []string{"select " + strings.Join(f.Items, ", ")}
	case types.SelectCols:
		names := make([]string, 0, len(f.Cols))
		for _, col := range f.Cols {
			names = append(names, col.Bare())
		}
		return []string{"select " + strings.Join(names, ", ")}
	case types.SelectAs:
		items := make([]string, 0, len(f.Items))
		for _, item := range f.Items {
			expr := item.Expr
			if item.Col != nil {
				expr = item.Col.Qualified()
			}
			items = append(items, expr+" as "+item.Alias)
		}
		return []string{"select " + strings.Join(items, ", ")}
	case types.From:
		return []string{"from " + renderTable(f.Table)}
	case types.FromRaw:
		return []string{"from " + strings.Join(f.Items, ", ")}
	case types.Where:
		cond := RenderCondition(f.Cond)
		if cond == "" {
			return nil
		}
		return []string{"where " + cond}
	case types.WhereRaw:
		return []string{"where " + f.Text}
	case types.Update:
		return []string{"update " + renderTable(f.Table)}
	case types.Set:
		assigns := make([]string, 0, len(f.Assigns))
		for _, a := range f.Assigns {
			assigns = append(assigns, a.Column+"="+a.Expr)
		}
		return []string{"set " + strings.Join(assigns, ", ")}
	case types.GroupBy:
		return []string{"group by " + strings.Join(f.Keys, ", ")}
	case types.OrderBy:
		return []string{"order by " + strings.Join(f.Keys, ", ")}
	case types.Join:
		keyword := "inner join"
		if f.Kind != "" {
			keyword = f.Kind + " join"
		}
		return []string{fmt.Sprintf("%s %s on %s=%s",
			keyword, renderTable(f.Table), f.Left.Qualified(), f.Right.Qualified())}
	case types.Nest:
		inner := renderFragments(syntax, f.Inner)
		lines := make([]string, 0, len(inner)+2)
		lines = append(lines, "(")
		for _, line := range inner {
			lines = append(lines, indentUnit+line)
		}
		lines = append(lines, ") "+f.Alias)
		return lines
	case types.Many:
		return renderFragments(syntax, f.Items)
	case types.Skip:
		return nil
	case types.Raw:
		return strings.Split(f.Text, "\n")
	case types.Limit:
		return []string{fmt.Sprintf(dialect.For(syntax).Limit, f.N)}
	case types.Offset:
		return []string{fmt.Sprintf(dialect.For(syntax).Offset, f.N)}
	default:
		return nil
	}
}

func renderTable(t types.Table) string {
	if t.Alias != "" {
		return t.Name + " " + t.Alias
	}
	return t.Name
}

// RenderCondition serializes a condition tree to predicate text.
//
// Column references render in qualified form. Group items are joined with
// the group's logic keyword; an item is parenthesized only when it is
// itself a group, and items rendering empty are dropped, so an empty group
// renders to the empty string and a single-condition group renders exactly
// as its element.
func RenderCondition(cond ConditionItem) string {
	switch c := cond.(type) {
	case types.Equals:
		if c.Quoted {
			return c.Col.Qualified() + "='" + c.Value + "'"
		}
		return c.Col.Qualified() + "=" + c.Value
	case types.In:
		return c.Col.Qualified() + " in " + c.Set
	case types.ConditionGroup:
		parts := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			s := RenderCondition(item)
			if s == "" {
				continue
			}
			if _, group := item.(types.ConditionGroup); group {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "+string(c.Logic)+" ")
	case types.CondRaw:
		return c.Text
	default:
		return ""
	}
}
