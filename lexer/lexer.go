// Package lexer tokenizes target-language source text: indentation,
// implicit/explicit line joining, numeric and string literals, and the
// full operator lexicon, into the typed stream a generated parser walks.
package lexer

import (
	"github.com/relang/llcc/source"
)

func isWhitespace(c byte) bool  { return c == ' ' || c == '\t' }
func isNewlineByte(c byte) bool { return c == '\r' || c == '\n' }
func isDecDigit(c byte) bool    { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDecDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
func isOctDigit(c byte) bool    { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool    { return c == '0' || c == '1' }
func isAsciiLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// nameChar is the continuation predicate for NAME runs: letter, decimal
// digit, or underscore. (The tool this is grounded on reuses the binary
// digit predicate here by mistake; this uses the decimal predicate per
// the correction in the design notes.)
func nameChar(c byte) bool {
	return isAsciiLetter(c) || isDecDigit(c) || c == '_'
}

type pusher func(kind Kind, offset, length int, text string) *Token

// Tokenize converts src's content into an ordered token stream: whitespace
// drives a monotonic INDENT/DEDENT stack, `nest` tracks bracket depth to
// implicitly join lines inside brackets, `\` joins lines explicitly,
// numbers/strings/operators/names are scanned per their own rules, and
// EOF drains the indent stack before a final zero-length ENDMARKER.
func Tokenize(src *source.Source) ([]*Token, error) {
	content := src.Content()
	n := len(content)

	var toks []*Token
	p := 0
	lineNum := 1
	nest := 0
	lineNew := true
	indentStack := []int{0}

	push := func(kind Kind, offset, length int, text string) *Token {
		t := &Token{kind: kind, offset: offset, length: length, text: text, sourceName: src.Name()}
		t.line, t.col = src.LineCol(offset)
		toks = append(toks, t)
		return t
	}

	for p < n {
		c := content[p]

		switch {
		case isWhitespace(c):
			i := p
			for p < n && isWhitespace(content[p]) {
				p++
			}
			if lineNew {
				lineNew = false
				if p < n && content[p] != '#' && !isNewlineByte(content[p]) && nest == 0 {
					dist := p - i
					top := indentStack[len(indentStack)-1]
					if dist > top {
						push(INDENT, i, dist, "")
						indentStack = append(indentStack, dist)
					} else if dist < top {
						for dist < indentStack[len(indentStack)-1] {
							push(DEDENT, i, 0, "")
							indentStack = indentStack[:len(indentStack)-1]
						}
					}
				}
			}

		case isNewlineByte(c):
			if len(toks) > 0 && toks[len(toks)-1].kind != NEWLINE && nest == 0 && !lineNew {
				push(NEWLINE, p, 1, "\n")
			}
			p++
			lineNum++
			if nest == 0 {
				lineNew = true
			}

		case lineNew:
			lineNew = false
			for indentStack[len(indentStack)-1] > 0 {
				push(DEDENT, p, 0, "")
				indentStack = indentStack[:len(indentStack)-1]
			}

		case c == '#':
			for p < n && !isNewlineByte(content[p]) {
				p++
			}

		case c == '\\' && p+1 < n && isNewlineByte(content[p+1]):
			p += 2
			lineNum++

		case isDecDigit(c) || (c == '.' && p+1 < n && isDecDigit(content[p+1])):
			newP, err := scanNumber(content, p, src, push)
			if err != nil {
				return nil, err
			}
			p = newP

		default:
			if newP, ok := scanOperator(content, p, &nest, push); ok {
				if nest < 0 {
					return nil, tokErr(src, newP, NegativeNestError, "negative bracket nesting")
				}
				p = newP
				continue
			}

			newP, ok, err := scanString(content, p, src, push)
			if err != nil {
				return nil, err
			}
			if ok {
				p = newP
				continue
			}

			if isAsciiLetter(c) {
				k := p
				for p < n && nameChar(content[p]) {
					p++
				}
				push(NAME, k, p-k, string(content[k:p]))
				continue
			}

			return nil, tokErr(src, p, UnrecognizedByteError, "unrecognized byte 0x%02x", c)
		}
	}

	for indentStack[len(indentStack)-1] > 0 {
		push(DEDENT, p, 0, "")
		indentStack = indentStack[:len(indentStack)-1]
	}
	push(ENDMARKER, p, 0, "")

	return toks, nil
}

// scanNumber parses a NUMBER token starting at p, returning the offset
// just past it.
func scanNumber(content []byte, p int, src *source.Source, push pusher) (int, error) {
	n := len(content)
	i := p
	c1 := content[p]
	c2 := byte(' ')
	if p+1 < n {
		c2 = content[p+1]
	}

	scanBase := func(digit func(byte) bool, what string) (int, error) {
		p += 2
		for p < n && digit(content[p]) {
			p++
		}
		if p-i < 3 {
			return 0, tokErr(src, p, MissingPrefixDigitsError, "digits missing after %s prefix", what)
		}
		push(NUMBER, i, p-i, string(content[i:p]))
		return p, nil
	}

	switch {
	case c1 == '0' && (c2 == 'x' || c2 == 'X'):
		return scanBase(isHexDigit, "hex")
	case c1 == '0' && (c2 == 'b' || c2 == 'B'):
		return scanBase(isBinDigit, "binary")
	case c1 == '0' && (c2 == 'o' || c2 == 'O'):
		return scanBase(isOctDigit, "octal")
	}

	for p < n && isDecDigit(content[p]) {
		p++
	}
	if p < n && content[p] == '.' {
		p++
		for p < n && isDecDigit(content[p]) {
			p++
		}
	}
	if p < n && (content[p] == 'e' || content[p] == 'E') {
		p++
		if p < n && content[p] == '-' {
			p++
		}
		k := p
		for p < n && isDecDigit(content[p]) {
			p++
		}
		if p-k < 1 {
			return 0, tokErr(src, p, MissingExponentDigitsError, "exponent digits missing")
		}
	}

	push(NUMBER, i, p-i, string(content[i:p]))
	return p, nil
}

// operator is one entry of the longest-match operator table.
type operator struct {
	text string
	kind Kind
}

var operatorTable = []operator{
	{"...", ELLIPSIS},
	{"**=", DOUBLESTAREQUAL},
	{"//=", DOUBLESLASHEQUAL},
	{"<<=", LEFTSHIFTEQUAL},
	{">>=", RIGHTSHIFTEQUAL},
	{"**", DOUBLESTAR},
	{"//", DOUBLESLASH},
	{"<<", LEFTSHIFT},
	{">>", RIGHTSHIFT},
	{"<>", NOTEQUAL},
	{"<=", LESSEQUAL},
	{">=", GREATEREQUAL},
	{"==", EQEQUAL},
	{"!=", NOTEQUAL},
	{"+=", PLUSEQUAL},
	{"-=", MINEQUAL},
	{"->", RARROW},
	{"*=", STAREQUAL},
	{"/=", SLASHEQUAL},
	{"|=", VBAREQUAL},
	{"%=", PERCENTEQUAL},
	{"&=", AMPEREQUAL},
	{"^=", CIRCUMFLEXEQUAL},
	{"@=", ATEQUAL},
	{"(", LPAR},
	{")", RPAR},
	{"[", LSQB},
	{"]", RSQB},
	{":", COLON},
	{",", COMMA},
	{";", SEMI},
	{".", DOT},
	{"{", LBRACE},
	{"}", RBRACE},
	{"~", TILDE},
	{"@", AT},
	{"<", LESS},
	{">", GREATER},
	{"=", EQUAL},
	{"+", PLUS},
	{"-", MINUS},
	{"*", STAR},
	{"/", SLASH},
	{"|", VBAR},
	{"%", PERCENT},
	{"&", AMPER},
	{"^", CIRCUMFLEX},
}

// scanOperator matches the longest operator at p against operatorTable,
// adjusting *nest for bracket operators. matched is false when nothing in
// the table starts at p.
func scanOperator(content []byte, p int, nest *int, push pusher) (newP int, matched bool) {
	n := len(content)
	bestLen := 0
	var best operator

	for _, op := range operatorTable {
		l := len(op.text)
		if p+l > n || l <= bestLen {
			continue
		}
		if string(content[p:p+l]) == op.text {
			best = op
			bestLen = l
		}
	}

	if bestLen == 0 {
		return p, false
	}

	push(best.kind, p, bestLen, best.text)
	switch best.kind {
	case LPAR, LBRACE, LSQB:
		*nest++
	case RPAR, RBRACE, RSQB:
		*nest--
	}
	return p + bestLen, true
}

// scanString matches an optional string prefix (u/r/rb/br/b,
// case-insensitive) followed by a single- or triple-quoted literal.
func scanString(content []byte, p int, src *source.Source, push pusher) (newP int, matched bool, err error) {
	n := len(content)
	lower := func(c byte) byte {
		if c >= 'A' && c <= 'Z' {
			return c + 32
		}
		return c
	}

	c1 := lower(content[p])
	c2 := byte(' ')
	if p+1 < n {
		c2 = lower(content[p+1])
	}

	prefixLen := 0
	switch c1 {
	case 'u':
		prefixLen = 1
	case 'r':
		prefixLen = 1
		if c2 == 'b' {
			prefixLen = 2
		}
	case 'b':
		prefixLen = 1
		if c2 == 'r' {
			prefixLen = 2
		}
	}

	if p+prefixLen >= n {
		return p, false, nil
	}
	quote := content[p+prefixLen]
	if quote != '\'' && quote != '"' {
		return p, false, nil
	}

	bodyStart := p + prefixLen + 1
	triple := bodyStart+1 < n && content[bodyStart] == quote && content[bodyStart+1] == quote

	var end int
	found := false
	if triple {
		k := bodyStart + 2
		for k+2 < n {
			if content[k] == '\\' && k+1 < n && (content[k+1] == '"' || content[k+1] == '\'') {
				k += 2
				continue
			}
			if content[k] == quote && content[k+1] == quote && content[k+2] == quote {
				found = true
				end = k + 3
				break
			}
			k++
		}
	} else {
		k := bodyStart
		for k < n {
			if content[k] == '\\' && k+1 < n && (content[k+1] == '"' || content[k+1] == '\'') {
				k += 2
				continue
			}
			if isNewlineByte(content[k]) {
				return 0, false, tokErr(src, k, NewlineInStringError, "newline inside single-line string literal")
			}
			if content[k] == quote {
				found = true
				end = k + 1
				break
			}
			k++
		}
	}

	if !found {
		return 0, false, tokErr(src, n, UnterminatedStringError, "unterminated string literal")
	}

	push(STRING, p, end-p, string(content[p:end]))
	return end, true, nil
}
