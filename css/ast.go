package css

// Node is a single element of the syntax tree: a Rule, a Declaration or an
// AtRule. The tree is strict: every node exclusively owns its children and
// no node points back at its parent.
type Node interface {
	node()
}

// Stylesheet is the root of a parsed tree. Body keeps source order and is
// never nil, even for empty input.
type Stylesheet struct {
	Body []Node
}

// Rule is "selector { body }". The selector is kept as the raw, unresolved
// source string and may contain commas, "&" or pseudo syntax.
type Rule struct {
	Selector string
	Body     []Node
}

// Declaration is "prop: value". Both sides are raw strings, neither
// validated nor typed.
type Declaration struct {
	Prop  string
	Value string
}

// AtRule is "@name params" followed by either a body block or a semicolon.
// Body distinguishes three states: nil for the directive form ("@import ...;"),
// an empty non-nil slice for an explicitly empty block ("@media x {}") and a
// populated slice otherwise. Parsing preserves the distinction and the
// stringifier relies on it.
type AtRule struct {
	Name   string
	Params string
	Body   []Node
}

// HasBlock reports whether the at-rule carries a block, possibly empty.
func (a *AtRule) HasBlock() bool {
	return a.Body != nil
}

func (*Rule) node()        {}
func (*Declaration) node() {}
func (*AtRule) node()      {}
