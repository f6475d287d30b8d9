// Package ast defines the tree shape a generated parser builds while
// backtracking: a node carries an optional token (for leaves) and an
// ordered slice of children (for rule nodes), rather than the pointer-rich
// linked-list tree a hand-authored AST library would use — a generated
// parser only ever appends children in order and never needs sibling or
// parent navigation.
package ast

import "github.com/relang/llcc/lexer"

// Node is either a leaf, carrying the token it matched, or a rule node,
// carrying the name of the rule it was produced from and its ordered
// children.
type Node struct {
	// RuleName is non-empty for a rule node, the grammar production that
	// produced this node.
	RuleName string

	// Token is set for a leaf node matched against the token stream.
	Token *lexer.Token

	// Children holds a rule node's ordered sub-results.
	Children []*Node
}

// NewLeaf builds a leaf node wrapping tok.
func NewLeaf(tok *lexer.Token) *Node {
	return &Node{Token: tok}
}

// NewRule builds a rule node bound to ruleName with no children yet.
func NewRule(ruleName string) *Node {
	return &Node{RuleName: ruleName}
}

// IsLeaf reports whether n wraps a single matched token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// AppendChild appends c to n's children.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Collector accumulates zero or more AST nodes produced while attempting
// to match a construct. Every generated procedure owns a local Collector,
// splicing it into the caller's on success and discarding it on failure —
// this is what makes backtracking safe: a failed alternative never leaks
// partial children into its caller.
type Collector struct {
	nodes []*Node
}

// Add appends n to the collector.
func (c *Collector) Add(n *Node) {
	c.nodes = append(c.nodes, n)
}

// Nodes returns the accumulated nodes.
func (c *Collector) Nodes() []*Node {
	return c.nodes
}

// Len reports how many nodes have been collected so far, usable as a
// snapshot to roll back to on failure.
func (c *Collector) Len() int {
	return len(c.nodes)
}

// Truncate discards every node collected after the snapshot returned by
// Len, restoring the collector to that earlier state.
func (c *Collector) Truncate(snapshot int) {
	c.nodes = c.nodes[:snapshot]
}

// SpliceInto appends all of c's nodes onto dst, in order.
func (c *Collector) SpliceInto(dst *Collector) {
	dst.nodes = append(dst.nodes, c.nodes...)
}
