// Package grammar loads a meta-grammar file written in a small EBNF
// dialect (see the productions in Parse's doc comment) and builds an
// in-memory rule map out of a six-shape node algebra: String, Optional,
// Repetition, Sequence, Rhs and Rule.
package grammar

import "strings"

// Kind tags which of the six node shapes a Node is.
type Kind int

const (
	KindString Kind = iota
	KindOptional
	KindRepetition
	KindSequence
	KindRhs
	KindRule
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindOptional:
		return "optional"
	case KindRepetition:
		return "repetition"
	case KindSequence:
		return "sequence"
	case KindRhs:
		return "rhs"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// Node is a grammar-expression tree node. Every shape below implements it.
// A Node owns its children exclusively and is read-only once built.
type Node interface {
	Kind() Kind
	// Repr renders the node the way the original tool's debug dump does,
	// e.g. "sequence(string(foo), string(bar), )".
	Repr() string
}

// StringNode is a leaf: either a bare NAME (non-terminal reference or
// terminal category name) or a single-quoted literal, quotes included.
type StringNode struct {
	Value string
}

func (n *StringNode) Kind() Kind   { return KindString }
func (n *StringNode) Repr() string { return "string(" + n.Value + ")" }

// IsTerminal reports whether Value is a quoted literal ('...').
func (n *StringNode) IsTerminal() bool { return IsTerminal(n.Value) }

// IsNonTerminal reports whether Value is a bare name.
func (n *StringNode) IsNonTerminal() bool { return IsNonTerminal(n.Value) }

// OptionalNode is the bracketed `[ rhs ]` form: matches zero or one.
type OptionalNode struct {
	Child Node
}

func (n *OptionalNode) Kind() Kind { return KindOptional }
func (n *OptionalNode) Repr() string {
	if n.Child == nil {
		return "optional()"
	}
	return "optional(" + n.Child.Repr() + ")"
}

// RepetitionNode is `X*` (Star=true) or `X+` (Star=false).
type RepetitionNode struct {
	Child Node
	Star  bool
}

func (n *RepetitionNode) Kind() Kind { return KindRepetition }
func (n *RepetitionNode) Repr() string {
	q := "'+'"
	if n.Star {
		q = "'*'"
	}
	body := ""
	if n.Child != nil {
		body = n.Child.Repr()
	}
	return "repetition(" + q + ", " + body + ")"
}

// SequenceNode is an ordered concatenation, always len(Children) >= 2 after
// normalization (single-child sequences collapse into their child).
type SequenceNode struct {
	Children []Node
}

func (n *SequenceNode) Kind() Kind { return KindSequence }
func (n *SequenceNode) Repr() string {
	var b strings.Builder
	b.WriteString("sequence(")
	for _, c := range n.Children {
		if c != nil {
			b.WriteString(c.Repr())
		}
		b.WriteString(", ")
	}
	b.WriteString(")")
	return b.String()
}

// RhsNode is an ordered set of alternatives, always len(Choices) >= 2 after
// normalization (single-choice rhs collapses into its choice).
type RhsNode struct {
	Choices []Node
}

func (n *RhsNode) Kind() Kind { return KindRhs }
func (n *RhsNode) Repr() string {
	var b strings.Builder
	b.WriteString("rhs(")
	for i, c := range n.Choices {
		if c == nil {
			continue
		}
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(c.Repr())
	}
	b.WriteString(")")
	return b.String()
}

// RuleNode is a named production, NAME ':' rhs.
type RuleNode struct {
	Name string
	Rhs  Node
}

func (n *RuleNode) Kind() Kind { return KindRule }
func (n *RuleNode) Repr() string {
	body := ""
	if n.Rhs != nil {
		body = n.Rhs.Repr()
	}
	return "rule(" + n.Name + ", " + body + ")"
}

// validNameChar reports whether c is an ASCII letter, digit, or underscore.
func validNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// IsNonTerminal reports whether token s names a non-terminal reference, i.e.
// it starts with a name char rather than a quote.
func IsNonTerminal(s string) bool {
	return len(s) > 0 && validNameChar(s[0])
}

// IsTerminal reports whether token s is a quoted terminal literal.
func IsTerminal(s string) bool {
	return len(s) > 0 && s[0] == '\''
}

// RuleMap is an ordered mapping from rule name to its Rule node. Order is
// insertion order, the order C6's node-id builder is required to walk rules
// in.
type RuleMap struct {
	order []string
	rules map[string]*RuleNode
}

// NewRuleMap builds an empty RuleMap.
func NewRuleMap() *RuleMap {
	return &RuleMap{rules: make(map[string]*RuleNode)}
}

// Add inserts or overwrites rule by name. Re-definition overwrites the
// previous rule but does not move its position in iteration order; this
// matches the map-assignment semantics of the tool this is grounded on,
// where re-definition is explicitly undefined/overwrite behavior.
func (rm *RuleMap) Add(rule *RuleNode) {
	if _, exists := rm.rules[rule.Name]; !exists {
		rm.order = append(rm.order, rule.Name)
	}
	rm.rules[rule.Name] = rule
}

// Get looks up a rule by name.
func (rm *RuleMap) Get(name string) (*RuleNode, bool) {
	r, ok := rm.rules[name]
	return r, ok
}

// Has reports whether name is a known rule (i.e. a non-terminal, not a
// terminal category).
func (rm *RuleMap) Has(name string) bool {
	_, ok := rm.rules[name]
	return ok
}

// Names returns rule names in insertion order.
func (rm *RuleMap) Names() []string {
	return rm.order
}

// Len returns the number of rules.
func (rm *RuleMap) Len() int {
	return len(rm.order)
}
