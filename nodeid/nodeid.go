// Package nodeid assigns a dense, non-negative id to every grammar node
// reachable from a rule map's roots.
package nodeid

import (
	"github.com/relang/llcc/grammar"
	"github.com/relang/llcc/internal/ints"
	"github.com/relang/llcc/internal/queue"
)

// Map is the node-id map: one id per grammar node, unique within a single
// Build call.
type Map map[grammar.Node]int

// ID looks up n's id, returning -1 if n is not in the map.
func (m Map) ID(n grammar.Node) int {
	if id, ok := m[n]; ok {
		return id
	}
	return -1
}

// Assigned returns every id Build has handed out, as a set. A caller that
// needs to index a plain slice by id (parsergen.Emit) uses this to confirm
// the ids it was given actually form a dense 0..Len()-1 range before
// trusting slice indexing rather than discovering a gap via a nil panic.
func (m Map) Assigned() *ints.Set {
	ids := make([]int, 0, len(m))
	for _, id := range m {
		ids = append(ids, id)
	}
	return ints.FromSlice(ids)
}

// Build assigns ids by iterating rules in rm's insertion order; for each
// rule it enqueues the rule's root node and performs a breadth-first walk
// over the subtree, assigning the next id to each node as it is popped.
// Ids are single-assignment: a node already visited (e.g. shared via a
// name reference resolved elsewhere) keeps its first id.
func Build(rm *grammar.RuleMap) Map {
	m := make(Map)
	next := 0

	assign := func(n grammar.Node) bool {
		if _, ok := m[n]; ok {
			return false
		}
		m[n] = next
		next++
		return true
	}

	for _, name := range rm.Names() {
		rule, _ := rm.Get(name)
		if rule == nil {
			continue
		}

		q := queue.New[grammar.Node](rule)
		for !q.IsEmpty() {
			n, _ := q.First()
			if n == nil || !assign(n) {
				continue
			}

			switch v := n.(type) {
			case *grammar.OptionalNode:
				q.Append(v.Child)
			case *grammar.RepetitionNode:
				q.Append(v.Child)
			case *grammar.SequenceNode:
				for _, c := range v.Children {
					q.Append(c)
				}
			case *grammar.RhsNode:
				for _, c := range v.Choices {
					q.Append(c)
				}
			case *grammar.RuleNode:
				q.Append(v.Rhs)
			}
		}
	}

	return m
}
