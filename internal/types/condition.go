package types

// ConditionItem represents one node of a boolean condition tree: a leaf
// comparison, a logic group, or raw predicate text.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type ConditionItem interface {
	IsConditionItem()
}

// Equals represents an equality comparison against literal or raw text.
// Quoted wraps the value in single quotes; unquoted passes it through for
// parameter placeholders and raw numeric/boolean literals. There is no
// escaping beyond the quote wrap: this layer generates text, it is not a
// safety boundary.
type Equals struct {
	Col    Column
	Value  string
	Quoted bool
}

// In represents a set membership test. Set is caller-supplied raw text
// such as "(@a,@b)" or "(1,2,3)" and is never parsed or validated.
type In struct {
	Col Column
	Set string
}

// LogicOperator represents how grouped conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "and"
	OR  LogicOperator = "or"
)

// ConditionGroup represents grouped conditions with AND/OR logic.
// An empty group renders to the empty string rather than failing.
type ConditionGroup struct {
	Logic LogicOperator
	Items []ConditionItem
}

// CondRaw is the opaque escape hatch at predicate granularity.
type CondRaw struct {
	Text string
}

// Implement ConditionItem interface.
func (Equals) IsConditionItem()         {}
func (In) IsConditionItem()             {}
func (ConditionGroup) IsConditionItem() {}
func (CondRaw) IsConditionItem()        {}

// Eq creates a quoted equality: the value renders wrapped in single quotes.
func (c Column) Eq(value string) Equals {
	return Equals{Col: c, Value: value, Quoted: true}
}

// EqP creates an unquoted equality for parameter placeholders and raw
// numeric/boolean literals: the value renders verbatim.
func (c Column) EqP(value string) Equals {
	return Equals{Col: c, Value: value, Quoted: false}
}

// In creates a set membership test over a raw set expression.
func (c Column) In(set string) In {
	return In{Col: c, Set: set}
}
