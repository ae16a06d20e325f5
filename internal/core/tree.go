package core

import (
	"errors"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// findDescription returns the dd paired with the first dt whose trimmed
// text equals label.
func findDescription(doc ports.Node, label string) (ports.Node, bool) {
	term, ok := findTerm(doc, label)
	if !ok {
		return nil, false
	}
	return term.NextSibling("dd")
}

func findTerm(doc ports.Node, label string) (ports.Node, bool) {
	if doc == nil {
		return nil, false
	}
	for _, term := range doc.FindAll("dt") {
		if term.Text() == label {
			return term, true
		}
	}
	return nil, false
}

func kindError(kind types.ErrorKind, err error) *types.ResolveError {
	return types.NewResolveError(kind, "", err)
}

// withID tags err with id, wrapping it in a ResolveError of the fallback
// kind when it does not carry one yet.
func withID(err error, id types.Identifier, fallback types.ErrorKind) error {
	var resolveErr *types.ResolveError
	if errors.As(err, &resolveErr) {
		if resolveErr.ID == "" {
			resolveErr.ID = id
		}
		return err
	}
	return types.NewResolveError(fallback, id, err)
}
