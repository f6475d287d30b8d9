package grammar

import (
	"os"

	"github.com/relang/llcc"
)

// ParseFile reads name from disk and parses it as a meta-grammar file.
func ParseFile(name string, report llcc.Reporter) (*RuleMap, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, readFileError(name, err)
	}
	return Parse(content, name, report), nil
}

/*
Parse builds a RuleMap from a meta-grammar file's raw bytes. The dialect:

	rule        := NAME ':' rhs
	rhs         := sequence ('|' sequence)*
	sequence    := (term | option | repetition)+
	option      := '[' rhs ']'
	repetition  := '(' rhs ')' ('+'|'*')?
	term        := (NAME|STRING) ('+'|'*')?

Rule boundaries are found first by a linear scan over the flat token list:
a rule begins at the NAME immediately before each ':' token and runs to the
NAME immediately before the next ':' (or to the end of the list for the
last rule). Each span is parsed independently by parseRule; a span that
fails to parse is dropped and reported through report rather than failing
the whole file.
*/
func Parse(content []byte, sourceName string, report llcc.Reporter) *RuleMap {
	tokens := tokenize(content)
	rm := NewRuleMap()

	var colonIdx []int
	for i, tok := range tokens {
		if tok == ":" {
			colonIdx = append(colonIdx, i)
		}
	}

	for n, colon := range colonIdx {
		start := colon - 1
		end := len(tokens)
		if n+1 < len(colonIdx) {
			end = colonIdx[n+1] - 1
		}
		if start < 0 {
			continue
		}

		it := newTokensIter(tokens, start, end)
		rule := parseRule(it)
		if rule == nil {
			report.Report("%s: malformed production near token %d, dropped", sourceName, start)
			continue
		}
		rm.Add(rule)
	}

	return rm
}

// tokensIter is a position-based cursor over a token span, with reset
// semantics so callers can backtrack on a failed alternative.
type tokensIter struct {
	tokens     []string
	pos, limit int
}

func newTokensIter(tokens []string, begin, end int) *tokensIter {
	return &tokensIter{tokens: tokens, pos: begin, limit: end}
}

func (it *tokensIter) eof() bool {
	return it.pos >= it.limit
}

func (it *tokensIter) peek() string {
	if it.eof() {
		return ""
	}
	return it.tokens[it.pos]
}

func (it *tokensIter) get() string {
	s := it.peek()
	it.pos++
	return s
}

func (it *tokensIter) mark() int {
	return it.pos
}

func (it *tokensIter) reset(p int) {
	it.pos = p
}

// parseTerm: term := (NAME|STRING) ('+'|'*')?
func parseTerm(it *tokensIter) Node {
	p := it.mark()
	if it.eof() {
		return nil
	}

	next := it.peek()
	if !IsNonTerminal(next) && !IsTerminal(next) {
		it.reset(p)
		return nil
	}
	it.get()
	node := Node(&StringNode{Value: next})

	if q := it.peek(); q == "*" || q == "+" {
		it.get()
		return &RepetitionNode{Child: node, Star: q == "*"}
	}

	return node
}

// parseOption: option := '[' rhs ']'
func parseOption(it *tokensIter) Node {
	p := it.mark()
	if it.peek() != "[" {
		return nil
	}
	it.get()

	rhs := parseRhs(it)
	if it.peek() != "]" {
		it.reset(p)
		return nil
	}
	it.get()

	return &OptionalNode{Child: rhs}
}

// parseRepetition: repetition := '(' rhs ')' ('+'|'*')?
func parseRepetition(it *tokensIter) Node {
	p := it.mark()
	if it.peek() != "(" {
		return nil
	}
	it.get()

	rhs := parseRhs(it)
	if it.peek() != ")" {
		it.reset(p)
		return nil
	}
	it.get()

	if q := it.peek(); q == "+" || q == "*" {
		it.get()
		return &RepetitionNode{Child: rhs, Star: q == "*"}
	}

	// parenthesized group without a trailing quantifier: parens erased.
	return rhs
}

// parseSequence: sequence := (term | option | repetition)+
func parseSequence(it *tokensIter) Node {
	var children []Node

	for {
		if next := parseTerm(it); next != nil {
			children = append(children, next)
			continue
		}
		if next := parseOption(it); next != nil {
			children = append(children, next)
			continue
		}
		if next := parseRepetition(it); next != nil {
			// an unquantified group whose inner rhs is a sequence is
			// spliced in, so "(A B) C" is one 3-child sequence.
			if inner, ok := next.(*SequenceNode); ok {
				children = append(children, inner.Children...)
			} else {
				children = append(children, next)
			}
			continue
		}
		break
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return &SequenceNode{Children: children}
	}
}

// parseRhs: rhs := sequence ('|' sequence)*
func parseRhs(it *tokensIter) Node {
	p := it.mark()

	first := parseSequence(it)
	if first == nil {
		it.reset(p)
		return nil
	}

	choices := []Node{first}

	for it.peek() == "|" {
		it.get()

		next := parseSequence(it)
		if next == nil {
			// e.g. "A | | B": a broken alternative invalidates the whole
			// production, it.reset(p) lets the caller drop the entire rule.
			it.reset(p)
			return nil
		}

		choices = append(choices, next)
	}

	if len(choices) == 1 {
		return choices[0]
	}
	return &RhsNode{Choices: choices}
}

// parseRule: rule := NAME ':' rhs
func parseRule(it *tokensIter) *RuleNode {
	p := it.mark()

	name := it.peek()
	if !IsNonTerminal(name) {
		it.reset(p)
		return nil
	}
	it.get()

	if it.peek() != ":" {
		it.reset(p)
		return nil
	}
	it.get()

	rhs := parseRhs(it)
	if rhs == nil {
		it.reset(p)
		return nil
	}

	return &RuleNode{Name: name, Rhs: rhs}
}
