package lexer

import (
	"github.com/relang/llcc"
	"github.com/relang/llcc/errors"
	"github.com/relang/llcc/source"
)

// Error codes in the LexicalErrors range. Every one of these is fatal:
// tokenization stops and the partial token list is discarded.
const (
	MissingPrefixDigitsError = llcc.LexicalErrors + iota
	MissingExponentDigitsError
	UnterminatedStringError
	NewlineInStringError
	NegativeNestError
	UnrecognizedByteError
)

func tokErr(src *source.Source, offset, code int, msg string, params ...any) *errors.Error {
	return errors.FormatPos(source.NewPos(src, offset), code, msg, params...)
}
