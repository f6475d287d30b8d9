// Package firstset computes FIRST sets over a grammar-node tree, with the
// pseudo-terminal EPS marking nullability, via fixed-point iteration so
// cyclic rule graphs (A := B, B := A) terminate.
package firstset

import (
	"github.com/relang/llcc"
	"github.com/relang/llcc/errors"
	"github.com/relang/llcc/grammar"
	"github.com/relang/llcc/lexer"
)

// EPS is the pseudo-terminal marking that a node can derive the empty
// string.
const EPS = "EPS"

// Set is a FIRST set: terminal names, plus EPS when the node is nullable.
type Set map[string]struct{}

func newSet() Set { return make(Set) }

func (s Set) add(v string) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// addAll unions src into s, returning whether s grew.
func (s Set) addAll(src Set) bool {
	grew := false
	for v := range src {
		if s.add(v) {
			grew = true
		}
	}
	return grew
}

// Has reports whether v (a terminal name or EPS) is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Map is the FIRST map: one Set per grammar node, keyed by node identity.
type Map map[grammar.Node]Set

// Error codes in the FirstSetErrors range.
const (
	EpsInRhsError = llcc.FirstSetErrors + iota
)

// Compute walks every rule in rm and computes its FIRST set (and that of
// every node reachable from it) via fixed-point iteration: all sets start
// empty and every node is recomputed from its current dependencies until
// none of them grow, which is what a cyclic rule graph like `A := B` /
// `B := A` requires — a naive unmemoized recursive descent would diverge
// on such a graph.
//
// report receives a diagnostic for every grammar symbol that is neither a
// known rule name nor (trivially) itself a terminal category — i.e. a
// dangling reference — once per pass of the iteration, so the same symbol
// can be reported more than once; that node's FIRST set is treated as empty
// rather than aborting the whole computation. An EPS found inside an Rhs
// alternative is fatal per the error table and aborts with a non-nil
// error.
func Compute(rm *grammar.RuleMap, report llcc.Reporter) (Map, error) {
	m := make(Map)

	var nodes []grammar.Node
	seen := make(map[grammar.Node]bool)
	var collect func(n grammar.Node)
	collect = func(n grammar.Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		nodes = append(nodes, n)
		m[n] = newSet()

		switch v := n.(type) {
		case *grammar.OptionalNode:
			collect(v.Child)
		case *grammar.RepetitionNode:
			collect(v.Child)
		case *grammar.SequenceNode:
			for _, c := range v.Children {
				collect(c)
			}
		case *grammar.RhsNode:
			for _, c := range v.Choices {
				collect(c)
			}
		case *grammar.RuleNode:
			collect(v.Rhs)
		}
	}
	for _, name := range rm.Names() {
		rule, _ := rm.Get(name)
		collect(rule)
	}

	for {
		grew := false
		for _, n := range nodes {
			g, err := recompute(n, rm, m, report)
			if err != nil {
				return nil, err
			}
			if g {
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	return m, nil
}

// recompute folds n's current FIRST set forward one step from its
// dependencies' current sets, returning whether the set grew.
func recompute(n grammar.Node, rm *grammar.RuleMap, m Map, report llcc.Reporter) (bool, error) {
	switch v := n.(type) {
	case *grammar.StringNode:
		if v.IsTerminal() {
			return m[n].add(v.Value), nil
		}
		if rule, ok := rm.Get(v.Value); ok {
			return m[n].addAll(m[rule]), nil
		}
		if lexer.IsKindName(v.Value) {
			return m[n].add(v.Value), nil
		}
		report.Report("unknown grammar symbol %q, treated as empty FIRST", v.Value)
		return false, nil

	case *grammar.OptionalNode:
		grew := m[n].add(EPS)
		if v.Child != nil {
			if m[n].addAll(m[v.Child]) {
				grew = true
			}
		}
		return grew, nil

	case *grammar.RepetitionNode:
		grew := false
		if v.Child != nil {
			if m[n].addAll(m[v.Child]) {
				grew = true
			}
		}
		if v.Star && m[n].add(EPS) {
			grew = true
		}
		return grew, nil

	case *grammar.SequenceNode:
		grew := false
		allEps := true
		for _, c := range v.Children {
			for t := range m[c] {
				if t == EPS {
					continue
				}
				if m[n].add(t) {
					grew = true
				}
			}
			if !m[c].Has(EPS) {
				allEps = false
				break
			}
		}
		if allEps && m[n].add(EPS) {
			grew = true
		}
		return grew, nil

	case *grammar.RhsNode:
		grew := false
		for _, c := range v.Choices {
			if m[c].Has(EPS) {
				return false, epsInRhsError()
			}
			if m[n].addAll(m[c]) {
				grew = true
			}
		}
		return grew, nil

	case *grammar.RuleNode:
		if v.Rhs == nil {
			return false, nil
		}
		return m[n].addAll(m[v.Rhs]), nil
	}

	return false, nil
}

func epsInRhsError() *errors.Error {
	return errors.Format(EpsInRhsError, "EPS found inside an rhs alternative")
}
