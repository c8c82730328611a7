package dtcg

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes resolution can produce. They are
// wrapped with reference and token context, so test with errors.Is.
var (
	ErrValueAndRef      = errors.New("$value and $ref are mutually exclusive")
	ErrUnresolvable     = errors.New("could not be resolved")
	ErrNotAToken        = errors.New("does not point to a valid token")
	ErrAmbiguousPointer = errors.New("points to a token object; reference its $value member or use an alias")
	ErrExtendsTarget    = errors.New("points to a token, not a group")
	ErrMissingType      = errors.New("has no $type and no inherited $type from any ancestor")
)

// CycleError reports a reference or extension chain that revisits an entry
// already being resolved. Chain holds the references in visit order, ending
// with the repeated entry.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "cyclic reference: " + strings.Join(e.Chain, " -> ")
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "$"
	}
	return strings.Join(path, ".")
}
