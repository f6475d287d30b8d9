package lexer

import (
	"strings"

	"github.com/relang/llcc/internal/bmap"
	"github.com/relang/llcc/source"
)

// Kind is a closed enumeration of target-language token kinds.
type Kind int

// Kind values, in the order the reference implementation's token_t enum
// declares them.
const (
	ENDMARKER Kind = iota
	NAME
	NUMBER
	STRING
	NEWLINE
	INDENT
	DEDENT
	LPAR
	RPAR
	LSQB
	RSQB
	COLON
	COMMA
	SEMI
	PLUS
	MINUS
	STAR
	SLASH
	VBAR
	AMPER
	LESS
	GREATER
	EQUAL
	DOT
	PERCENT
	LBRACE
	RBRACE
	EQEQUAL
	NOTEQUAL
	LESSEQUAL
	GREATEREQUAL
	TILDE
	CIRCUMFLEX
	LEFTSHIFT
	RIGHTSHIFT
	DOUBLESTAR
	PLUSEQUAL
	MINEQUAL
	STAREQUAL
	SLASHEQUAL
	PERCENTEQUAL
	AMPEREQUAL
	VBAREQUAL
	CIRCUMFLEXEQUAL
	LEFTSHIFTEQUAL
	RIGHTSHIFTEQUAL
	DOUBLESTAREQUAL
	DOUBLESLASH
	DOUBLESLASHEQUAL
	AT
	ATEQUAL
	RARROW
	ELLIPSIS
	OP
	AWAIT
	ASYNC
	ERRORTOKEN
	N_TOKENS
)

// KindName returns the "TOK_..." name for k, covering every enum member
// (including the N_TOKENS sentinel), matching the completeness of the
// tool this is grounded on.
func KindName(k Kind) string {
	switch k {
	case ENDMARKER:
		return "TOK_ENDMARKER"
	case NAME:
		return "TOK_NAME"
	case NUMBER:
		return "TOK_NUMBER"
	case STRING:
		return "TOK_STRING"
	case NEWLINE:
		return "TOK_NEWLINE"
	case INDENT:
		return "TOK_INDENT"
	case DEDENT:
		return "TOK_DEDENT"
	case LPAR:
		return "TOK_LPAR"
	case RPAR:
		return "TOK_RPAR"
	case LSQB:
		return "TOK_LSQB"
	case RSQB:
		return "TOK_RSQB"
	case COLON:
		return "TOK_COLON"
	case COMMA:
		return "TOK_COMMA"
	case SEMI:
		return "TOK_SEMI"
	case PLUS:
		return "TOK_PLUS"
	case MINUS:
		return "TOK_MINUS"
	case STAR:
		return "TOK_STAR"
	case SLASH:
		return "TOK_SLASH"
	case VBAR:
		return "TOK_VBAR"
	case AMPER:
		return "TOK_AMPER"
	case LESS:
		return "TOK_LESS"
	case GREATER:
		return "TOK_GREATER"
	case EQUAL:
		return "TOK_EQUAL"
	case DOT:
		return "TOK_DOT"
	case PERCENT:
		return "TOK_PERCENT"
	case LBRACE:
		return "TOK_LBRACE"
	case RBRACE:
		return "TOK_RBRACE"
	case EQEQUAL:
		return "TOK_EQEQUAL"
	case NOTEQUAL:
		return "TOK_NOTEQUAL"
	case LESSEQUAL:
		return "TOK_LESSEQUAL"
	case GREATEREQUAL:
		return "TOK_GREATEREQUAL"
	case TILDE:
		return "TOK_TILDE"
	case CIRCUMFLEX:
		return "TOK_CIRCUMFLEX"
	case LEFTSHIFT:
		return "TOK_LEFTSHIFT"
	case RIGHTSHIFT:
		return "TOK_RIGHTSHIFT"
	case DOUBLESTAR:
		return "TOK_DOUBLESTAR"
	case PLUSEQUAL:
		return "TOK_PLUSEQUAL"
	case MINEQUAL:
		return "TOK_MINEQUAL"
	case STAREQUAL:
		return "TOK_STAREQUAL"
	case SLASHEQUAL:
		return "TOK_SLASHEQUAL"
	case PERCENTEQUAL:
		return "TOK_PERCENTEQUAL"
	case AMPEREQUAL:
		return "TOK_AMPEREQUAL"
	case VBAREQUAL:
		return "TOK_VBAREQUAL"
	case CIRCUMFLEXEQUAL:
		return "TOK_CIRCUMFLEXEQUAL"
	case LEFTSHIFTEQUAL:
		return "TOK_LEFTSHIFTEQUAL"
	case RIGHTSHIFTEQUAL:
		return "TOK_RIGHTSHIFTEQUAL"
	case DOUBLESTAREQUAL:
		return "TOK_DOUBLESTAREQUAL"
	case DOUBLESLASH:
		return "TOK_DOUBLESLASH"
	case DOUBLESLASHEQUAL:
		return "TOK_DOUBLESLASHEQUAL"
	case AT:
		return "TOK_AT"
	case ATEQUAL:
		return "TOK_ATEQUAL"
	case RARROW:
		return "TOK_RARROW"
	case ELLIPSIS:
		return "TOK_ELLIPSIS"
	case OP:
		return "TOK_OP"
	case AWAIT:
		return "TOK_AWAIT"
	case ASYNC:
		return "TOK_ASYNC"
	case ERRORTOKEN:
		return "TOK_ERRORTOKEN"
	case N_TOKENS:
		return "TOK_N_TOKENS"
	default:
		return "TOK_UNKNOWN"
	}
}

// kindNames holds the bare (no "TOK_" prefix) spelling of every kind, built
// once from KindName so grammar terminal-category references can be
// validated against the same closed enumeration tokens are drawn from. It
// is a small, fixed, read-mostly key set keyed by byte slices straight out
// of the grammar lexer's token scan, which is exactly what a BMap is
// built for.
var kindNames = func() *bmap.BMap[struct{}] {
	m := bmap.New[struct{}](int(N_TOKENS) + 1)
	for k := ENDMARKER; k <= N_TOKENS; k++ {
		name := strings.TrimPrefix(KindName(k), "TOK_")
		m.Set([]byte(name), struct{}{})
	}
	return m
}()

// IsKindName reports whether name is the bare spelling of a known token
// kind (e.g. "NAME", "PLUS"), the way a grammar's terminal-category
// references are spelled.
func IsKindName(name string) bool {
	_, ok := kindNames.Get([]byte(name))
	return ok
}

// Token is the quintuple { kind, byte_offset, byte_length, line_number,
// text? }. Text is populated for NAME/NUMBER/STRING/NEWLINE and every
// operator/punctuator; empty for INDENT/DEDENT/ENDMARKER.
type Token struct {
	kind       Kind
	offset     int
	length     int
	line, col  int
	text       string
	sourceName string
}

// NewToken builds a Token at the given byte offset/length, resolving
// line/col against src (which may be nil in tests that don't need it).
func NewToken(kind Kind, offset, length int, text string, src *source.Source) *Token {
	t := &Token{kind: kind, offset: offset, length: length, text: text}
	if src != nil {
		t.sourceName = src.Name()
		t.line, t.col = src.LineCol(offset)
	}
	return t
}

func (t *Token) Kind() Kind      { return t.kind }
func (t *Token) KindName() string { return KindName(t.kind) }
func (t *Token) Offset() int     { return t.offset }
func (t *Token) Length() int     { return t.length }
func (t *Token) Text() string    { return t.text }
func (t *Token) Line() int       { return t.line }
func (t *Token) Col() int        { return t.col }

// SourceName implements llcc.SourcePos.
func (t *Token) SourceName() string { return t.sourceName }
