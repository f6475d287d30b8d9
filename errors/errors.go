// Package errors re-exports llcc.Error under shorter names so subpackages
// can write errors.Format(...) / errors.FormatPos(...) instead of spelling out
// the root package name at every call site.
package errors

import (
	"github.com/relang/llcc"
)

// Error is an alias for llcc.Error.
type Error = llcc.Error

// SourcePos is an alias for llcc.SourcePos.
type SourcePos = llcc.SourcePos

// New builds an Error; see llcc.NewError.
func New(code int, msg, name string, line, col int) *Error {
	return llcc.NewError(code, msg, name, line, col)
}

// Format builds an Error with no position information; see llcc.FormatError.
func Format(code int, msg string, params ...any) *Error {
	return llcc.FormatError(code, msg, params...)
}

// FormatPos builds an Error carrying pos's source position; see llcc.FormatErrorPos.
func FormatPos(pos SourcePos, code int, msg string, params ...any) *Error {
	return llcc.FormatErrorPos(pos, code, msg, params...)
}
