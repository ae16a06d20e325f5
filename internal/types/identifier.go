package types

import (
	"regexp"
	"strings"
)

// Identifier is a dbSNP reference SNP id such as "rs1042522".
type Identifier string

// RawDocument is the unparsed markup of one dbSNP page.
type RawDocument string

var identifierPattern = regexp.MustCompile(`^rs\d+$`)

// ParseIdentifier trims value and checks it against the rs<digits> form.
// The id doubles as a cache file name, so nothing else is accepted.
func ParseIdentifier(value string) (Identifier, bool) {
	trimmed := strings.TrimSpace(value)
	if !identifierPattern.MatchString(trimmed) {
		return "", false
	}
	return Identifier(trimmed), true
}

func (id Identifier) String() string {
	return string(id)
}
