package grammar

import (
	"github.com/relang/llcc"
	"github.com/relang/llcc/errors"
)

// Error codes in the GrammarErrors range (llcc.GrammarErrors + offset).
const (
	ReadFileError = llcc.GrammarErrors + iota
)

func readFileError(name string, cause error) *errors.Error {
	return errors.Format(ReadFileError, "cannot read grammar file %q: %v", name, cause)
}
