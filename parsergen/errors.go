package parsergen

import (
	"github.com/relang/llcc"
	"github.com/relang/llcc/errors"
)

// Error codes in the EmitErrors range.
const (
	MissingIDError = llcc.EmitErrors + iota
)

func missingIDError(what string) *errors.Error {
	return errors.Format(MissingIDError, "no node id assigned for %s", what)
}
