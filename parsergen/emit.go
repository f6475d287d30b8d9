// Package parsergen walks a grammar's rule map together with its node-id
// and FIRST maps and emits, per node, a Go procedure that attempts to
// parse that construct against a shared token stream with full
// backtracking.
package parsergen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/relang/llcc/firstset"
	"github.com/relang/llcc/grammar"
	"github.com/relang/llcc/lexer"
	"github.com/relang/llcc/nodeid"
)

// Emit writes one procedure per node in ids (ordered by id, which is
// also C6's emission order) plus one named entry point per rule, to w.
//
// Every procedure has the signature
//
//	func parseNode<id>(toks []*lexer.Token, pos int) (newPos int, ok bool, col *ast.Collector)
//
// and is responsible for restoring the token cursor on failure: it never
// mutates pos itself, only returns a newPos the caller may choose to
// adopt, and only ever returns a non-empty Collector on success. This is
// the "scoped acquisition that rolls back on failure" backtracking
// discipline threaded through every shape below.
func Emit(rm *grammar.RuleMap, ids nodeid.Map, first firstset.Map, w Writer) error {
	nodes := make([]grammar.Node, len(ids))
	for n, id := range ids {
		if id < 0 || id >= len(nodes) {
			return missingIDError(n.Repr())
		}
		nodes[id] = n
	}

	assigned := ids.Assigned()
	for id := range nodes {
		if !assigned.Contains(id) {
			return missingIDError(fmt.Sprintf("id %d", id))
		}
	}

	idOf := func(n grammar.Node) (int, error) {
		id, ok := ids[n]
		if !ok {
			return 0, missingIDError(n.Repr())
		}
		return id, nil
	}

	w.Line("// Code generated by parsergen. DO NOT EDIT.")
	w.Line("")

	for id, n := range nodes {
		if err := emitNode(w, id, n, idOf, first); err != nil {
			return err
		}
	}

	ruleIDs := map[string]int{}
	for _, name := range rm.Names() {
		rule, _ := rm.Get(name)
		id, err := idOf(rule)
		if err != nil {
			return err
		}
		ruleIDs[name] = id
	}

	names := make([]string, 0, len(ruleIDs))
	for name := range ruleIDs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w.Line("func parse_%s(toks []*lexer.Token, pos int) (int, bool, *ast.Collector) {", name)
		w.Indent()
		w.Line("return parseNode%d(toks, pos)", ruleIDs[name])
		w.Dedent()
		w.Line("}")
		w.Line("")
	}

	return nil
}

func firstComment(n grammar.Node, first firstset.Map) string {
	set, ok := first[n]
	if !ok || len(set) == 0 {
		return ""
	}
	names := make([]string, 0, len(set))
	for t := range set {
		names = append(names, t)
	}
	sort.Strings(names)
	return " // FIRST = {" + strings.Join(names, ", ") + "}"
}

func emitNode(w Writer, id int, n grammar.Node, idOf func(grammar.Node) (int, error), first firstset.Map) error {
	w.Line("func parseNode%d(toks []*lexer.Token, pos int) (int, bool, *ast.Collector) {%s", id, firstComment(n, first))
	w.Indent()

	var err error
	switch v := n.(type) {
	case *grammar.StringNode:
		err = emitString(w, v)
	case *grammar.OptionalNode:
		err = emitOptional(w, v, idOf)
	case *grammar.RepetitionNode:
		err = emitRepetition(w, v, idOf)
	case *grammar.SequenceNode:
		err = emitSequence(w, v, idOf)
	case *grammar.RhsNode:
		err = emitRhs(w, v, idOf)
	case *grammar.RuleNode:
		err = emitRule(w, v, idOf)
	}

	w.Dedent()
	w.Line("}")
	w.Line("")
	return err
}

// emitString handles both String shapes: a quoted literal matches exactly
// one token by text; a bare name that spells a token kind
// (lexer.IsKindName) matches exactly one token by kind, and any other bare
// name delegates to the parse_<name> entry point of the rule it names.
func emitString(w Writer, v *grammar.StringNode) error {
	if !v.IsTerminal() && !lexer.IsKindName(v.Value) {
		w.Line("return parse_%s(toks, pos)", v.Value)
		return nil
	}

	w.Line("col := &ast.Collector{}")
	w.Line("if pos >= len(toks) {")
	w.Indent()
	w.Line("return pos, false, col")
	w.Dedent()
	w.Line("}")
	w.Line("tok := toks[pos]")

	if v.IsTerminal() {
		literal := strings.Trim(v.Value, "'")
		w.Line("if tok.Text() != %q {", literal)
	} else {
		w.Line("if tok.KindName() != %q {", "TOK_"+v.Value)
	}
	w.Indent()
	w.Line("return pos, false, col")
	w.Dedent()
	w.Line("}")
	w.Line("col.Add(ast.NewLeaf(tok))")
	w.Line("return pos + 1, true, col")
	return nil
}

func emitOptional(w Writer, v *grammar.OptionalNode, idOf func(grammar.Node) (int, error)) error {
	childID, err := idOf(v.Child)
	if err != nil {
		return err
	}
	w.Line("col := &ast.Collector{}")
	w.Line("newPos, ok, childCol := parseNode%d(toks, pos)", childID)
	w.Line("if ok {")
	w.Indent()
	w.Line("childCol.SpliceInto(col)")
	w.Line("return newPos, true, col")
	w.Dedent()
	w.Line("}")
	w.Line("return pos, true, col")
	return nil
}

func emitRepetition(w Writer, v *grammar.RepetitionNode, idOf func(grammar.Node) (int, error)) error {
	childID, err := idOf(v.Child)
	if err != nil {
		return err
	}
	w.Line("col := &ast.Collector{}")
	w.Line("cur := pos")
	w.Line("count := 0")
	w.Line("for {")
	w.Indent()
	w.Line("newPos, ok, childCol := parseNode%d(toks, cur)", childID)
	w.Line("if !ok {")
	w.Indent()
	w.Line("break")
	w.Dedent()
	w.Line("}")
	w.Line("childCol.SpliceInto(col)")
	w.Line("cur = newPos")
	w.Line("count++")
	w.Dedent()
	w.Line("}")
	if v.Star {
		w.Line("return cur, true, col")
	} else {
		w.Line("if count == 0 {")
		w.Indent()
		w.Line("return pos, false, col")
		w.Dedent()
		w.Line("}")
		w.Line("return cur, true, col")
	}
	return nil
}

func emitSequence(w Writer, v *grammar.SequenceNode, idOf func(grammar.Node) (int, error)) error {
	w.Line("col := &ast.Collector{}")
	w.Line("cur := pos")
	for _, child := range v.Children {
		childID, err := idOf(child)
		if err != nil {
			return err
		}
		w.Line("{")
		w.Indent()
		w.Line("newPos, ok, childCol := parseNode%d(toks, cur)", childID)
		w.Line("if !ok {")
		w.Indent()
		w.Line("return pos, false, &ast.Collector{}")
		w.Dedent()
		w.Line("}")
		w.Line("childCol.SpliceInto(col)")
		w.Line("cur = newPos")
		w.Dedent()
		w.Line("}")
	}
	w.Line("return cur, true, col")
	return nil
}

// emitRhs tries every alternative in order against the unmodified pos,
// so each attempt automatically starts from the same token-cursor/AST
// state as the last — the ordered-choice backtracking the original
// emitter left as a stub.
func emitRhs(w Writer, v *grammar.RhsNode, idOf func(grammar.Node) (int, error)) error {
	for _, choice := range v.Choices {
		choiceID, err := idOf(choice)
		if err != nil {
			return err
		}
		w.Line("if newPos, ok, col := parseNode%d(toks, pos); ok {", choiceID)
		w.Indent()
		w.Line("return newPos, true, col")
		w.Dedent()
		w.Line("}")
	}
	w.Line("return pos, false, &ast.Collector{}")
	return nil
}

func emitRule(w Writer, v *grammar.RuleNode, idOf func(grammar.Node) (int, error)) error {
	rhsID, err := idOf(v.Rhs)
	if err != nil {
		return err
	}
	w.Line("newPos, ok, childCol := parseNode%d(toks, pos)", rhsID)
	w.Line("if !ok {")
	w.Indent()
	w.Line("return pos, false, &ast.Collector{}")
	w.Dedent()
	w.Line("}")
	w.Line("node := ast.NewRule(%q)", v.Name)
	w.Line("for _, c := range childCol.Nodes() {")
	w.Indent()
	w.Line("node.AppendChild(c)")
	w.Dedent()
	w.Line("}")
	w.Line("col := &ast.Collector{}")
	w.Line("col.Add(node)")
	w.Line("return newPos, true, col")
	return nil
}
