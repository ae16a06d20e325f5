package types

import (
	"errors"
	"fmt"
)

// ResolveError tags a failure with the identifier it belongs to and the
// kind used for batch reporting and exit codes.
type ResolveError struct {
	Kind ErrorKind
	ID   Identifier
	Err  error
}

func NewResolveError(kind ErrorKind, id Identifier, err error) *ResolveError {
	return &ResolveError{Kind: kind, ID: id, Err: err}
}

func (e *ResolveError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first ResolveError in err's chain.
func KindOf(err error) ErrorKind {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Kind
	}
	return ErrorKindNone
}
