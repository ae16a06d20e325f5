package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/shared"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const statusTerm = "Status"

type StatusClassifier struct{}

func NewStatusClassifier() StatusClassifier {
	return StatusClassifier{}
}

// Classify reads the Status section of a dbSNP page. A page without one
// is a standing record.
func (c StatusClassifier) Classify(ctx context.Context, doc ports.Node) (types.ResolutionOutcome, error) {
	desc, ok := findDescription(doc, statusTerm)
	if !ok {
		return types.Active(), nil
	}
	switch policies.MatchStatus(desc.Text()) {
	case types.OutcomeMerged:
		successor, err := mergeSuccessor(desc)
		if err != nil {
			return types.ResolutionOutcome{}, err
		}
		log.Ctx(ctx).Debug().Str("successor", successor.String()).Msg("status: merged")
		return types.MergedInto(successor), nil
	case types.OutcomeUnsupported:
		return types.Unsupported(), nil
	default:
		return types.Active(), nil
	}
}

func mergeSuccessor(desc ports.Node) (types.Identifier, error) {
	link, ok := desc.FindFirst("a")
	if !ok {
		return "", kindError(types.ErrorKindMalformedDocument, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("merged status has no successor link"))
	}
	href, _ := link.Attr("href")
	successor, ok := types.ParseIdentifier(shared.LastPathSegment(href))
	if !ok {
		return "", kindError(types.ErrorKindMalformedDocument, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("merged status links to invalid identifier %q", href)))
	}
	return successor, nil
}
