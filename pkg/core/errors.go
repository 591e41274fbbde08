package core

import (
	"errors"
	"fmt"

	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
)

var (
	errNilCatalog   = errors.New("catalog is nil")
	errMissingField = errors.New("required field is empty")
	errDuplicate    = errors.New("declared more than once")
	errReserved     = errors.New("name is reserved")
	errUnknown      = errors.New("not declared")
	errCycle        = errors.New("declaration cycle")
	errShape        = errors.New("exactly one of dimension, parent or equation must be set")
	errNumberInSpec = errors.New("only 1 may appear as a number in a quantity expression")
	errNotAKindRoot = errors.New("not a kind-tree root")
)

// DeclarationError reports the declaration that failed a build.
type DeclarationError struct {
	Kind collector.DeclarationKind
	Name string
	Err  error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("building %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *DeclarationError) Unwrap() error { return e.Err }

// declError wraps err unless it already names a declaration, so a failing
// dependency is reported as itself rather than through its dependents.
func declError(kind collector.DeclarationKind, name string, err error) error {
	var de *DeclarationError
	if errors.As(err, &de) {
		return err
	}
	return &DeclarationError{Kind: kind, Name: name, Err: err}
}
