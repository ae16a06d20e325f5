package ports

import (
	"context"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// Node is a read-only view over one element of a parsed page. Lookups
// that find nothing return (nil, false) or an empty slice.
type Node interface {
	// Tag is the lower-case element name; empty for the document root.
	Tag() string
	// Text is the concatenated descendant text with surrounding
	// whitespace trimmed.
	Text() string
	Attr(key string) (string, bool)
	// HasClass reports whether token is one of the space-separated values
	// of the class attribute.
	HasClass(token string) bool
	// FindFirst returns the first descendant with the given tag in
	// document order.
	FindFirst(tag string) (Node, bool)
	// FindAll returns every descendant with the given tag in document
	// order.
	FindAll(tag string) []Node
	// NextSibling returns the next element sibling with the given tag,
	// skipping text and other elements.
	NextSibling(tag string) (Node, bool)
}

type DocumentParserPort interface {
	Parse(raw types.RawDocument) (Node, error)
}

// DocumentSourcePort hands out the raw page for an identifier, either
// from the local cache or from the network.
type DocumentSourcePort interface {
	Load(ctx context.Context, id types.Identifier) (types.RawDocument, error)
}

type DocumentFetcherPort interface {
	Fetch(ctx context.Context, id types.Identifier) (types.RawDocument, error)
}

type DocumentCachePort interface {
	Exists(id types.Identifier) bool
	ReadCached(id types.Identifier) (types.RawDocument, error)
	Store(id types.Identifier, raw types.RawDocument) error
}
