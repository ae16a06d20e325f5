package policies

import (
	"strings"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const (
	PhraseMerged      = "was merged into"
	PhraseUnsupported = "Unsupported."
)

// StatusRule maps a phrase in the Status description to an outcome.
type StatusRule struct {
	Phrase string
	Kind   types.OutcomeKind
}

// StatusRules is evaluated first match wins. Merged stays ahead of
// Unsupported so a page carrying both phrasings is still followed.
var StatusRules = []StatusRule{
	{Phrase: PhraseMerged, Kind: types.OutcomeMerged},
	{Phrase: PhraseUnsupported, Kind: types.OutcomeUnsupported},
}

// MatchStatus returns the outcome kind of the first rule whose phrase is
// a substring of text, or active when none match.
func MatchStatus(text string) types.OutcomeKind {
	for _, rule := range StatusRules {
		if strings.Contains(text, rule.Phrase) {
			return rule.Kind
		}
	}
	return types.OutcomeActive
}
