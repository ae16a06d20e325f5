package ports

// IdentifierListPort reads a newline-delimited identifier list. Lines
// are trimmed and blank lines dropped; validation is left to the caller.
type IdentifierListPort interface {
	ReadIdentifiers(path string) ([]string, error)
}
