package nodeid

import (
	"testing"

	"github.com/relang/llcc/grammar"
)

func TestBuildAssignsDenseIds(t *testing.T) {
	rm := grammar.Parse([]byte("simple_stmt: NAME '=' NAME NEWLINE"), "t", nil)
	ids := Build(rm)

	rule, _ := rm.Get("simple_stmt")
	seq := rule.Rhs.(*grammar.SequenceNode)

	// rule + sequence + 4 leaves = 6 distinct nodes.
	if len(ids) != 6 {
		t.Fatalf("len(ids) = %d, want 6", len(ids))
	}

	seen := map[int]bool{}
	for _, id := range ids {
		if id < 0 || id >= len(ids) {
			t.Fatalf("id %d out of the dense [0, %d) range", id, len(ids))
		}
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}

	if ids.ID(rule) != 0 {
		t.Errorf("ID(rule) = %d, want 0 (rule roots enqueue first)", ids.ID(rule))
	}
	if ids.ID(seq) != 1 {
		t.Errorf("ID(sequence) = %d, want 1 (breadth-first: rule's direct child is visited next)", ids.ID(seq))
	}
}

func TestBuildDistinctIdsForRepeatedStringValue(t *testing.T) {
	// Two separate StringNode instances with the same NAME text are distinct
	// grammar nodes (no interning across parseTerm calls), so each gets its
	// own id; Build only collapses identity, not value equality.
	rm := grammar.Parse([]byte("x: A A"), "t", nil)
	ids := Build(rm)

	rule, _ := rm.Get("x")
	seq := rule.Rhs.(*grammar.SequenceNode)
	if ids.ID(seq.Children[0]) == ids.ID(seq.Children[1]) {
		t.Errorf("distinct StringNode instances should not share an id")
	}
}

func TestBuildUnknownNodeHasNoId(t *testing.T) {
	ids := Build(grammar.NewRuleMap())
	stray := &grammar.StringNode{Value: "X"}
	if id := ids.ID(stray); id != -1 {
		t.Errorf("ID(unreached node) = %d, want -1", id)
	}
}

func TestAssignedMatchesBuild(t *testing.T) {
	rm := grammar.Parse([]byte("x: A | B | C"), "t", nil)
	ids := Build(rm)

	assigned := ids.Assigned()
	for _, id := range ids {
		if !assigned.Contains(id) {
			t.Errorf("Assigned() missing id %d", id)
		}
	}
	if len(assigned.ToSlice()) != len(ids) {
		t.Errorf("Assigned() has %d members, want %d", len(assigned.ToSlice()), len(ids))
	}
}

func TestBuildMultipleRulesKeepsInsertionOrder(t *testing.T) {
	rm := grammar.Parse([]byte("b: X\na: Y"), "t", nil)
	ids := Build(rm)

	ruleB, _ := rm.Get("b")
	ruleA, _ := rm.Get("a")
	if ids.ID(ruleB) >= ids.ID(ruleA) {
		t.Errorf("rule %q should be walked (and thus get lower ids) before %q", "b", "a")
	}
}
