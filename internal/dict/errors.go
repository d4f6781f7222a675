package dict

import (
	"fmt"

	"github.com/vvka-141/regxml/pkg/regxml"
)

// DuplicateDefinitionError reports two definitions colliding during a build.
// It matches regxml.ErrDuplicateIdentity or regxml.ErrDuplicateSymbol, and
// regxml.ErrDuplicateDefinition, with errors.Is.
type DuplicateDefinitionError struct {
	Field      string // "AUID" or "Symbol"
	Value      string // the colliding AUID (as declared) or symbol
	FirstIndex int    // position of the definition registered first
	Index      int    // position of the rejected definition
}

const (
	fieldAUID   = "AUID"
	fieldSymbol = "Symbol"
)

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate %s: %s (definitions %d and %d)", e.Field, e.Value, e.FirstIndex, e.Index)
}

func (e *DuplicateDefinitionError) Unwrap() error {
	if e.Field == fieldSymbol {
		return regxml.ErrDuplicateSymbol
	}
	return regxml.ErrDuplicateIdentity
}
