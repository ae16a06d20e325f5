package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// DefaultMaxMergeHops bounds merge-chain traversal. Real dbSNP chains are
// a handful of hops long.
const DefaultMaxMergeHops = 32

type ResolutionEngine struct {
	Source       ports.DocumentSourcePort
	Parser       ports.DocumentParserPort
	Classifier   StatusClassifier
	Extractor    FrequencyExtractor
	MaxMergeHops int
}

func NewResolutionEngine(source ports.DocumentSourcePort, parser ports.DocumentParserPort, rows ports.RowPolicyPort, maxMergeHops int) ResolutionEngine {
	if maxMergeHops <= 0 {
		maxMergeHops = DefaultMaxMergeHops
	}
	return ResolutionEngine{
		Source:       source,
		Parser:       parser,
		Classifier:   NewStatusClassifier(),
		Extractor:    NewFrequencyExtractor(rows),
		MaxMergeHops: maxMergeHops,
	}
}

// Resolve follows merges from id until an active or unsupported page is
// reached and extracts its records. Revisiting an id, or following more
// than MaxMergeHops merges, fails with merge_loop_suspected.
func (e ResolutionEngine) Resolve(ctx context.Context, id types.Identifier) (types.Resolution, error) {
	if e.Source == nil || e.Parser == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolution engine requires document source and parser ports")
	}
	maxHops := e.MaxMergeHops
	if maxHops <= 0 {
		maxHops = DefaultMaxMergeHops
	}

	result := types.Resolution{Requested: id}
	seen := map[types.Identifier]struct{}{id: {}}
	current := id
	for {
		assert.NotEmpty(ctx, current.String(), "resolution hop requires an identifier")
		if err := ctx.Err(); err != nil {
			return result, types.NewResolveError(types.ErrorKindFetchFailed, current, err)
		}
		doc, err := e.load(ctx, current)
		if err != nil {
			return result, err
		}
		outcome, err := e.Classifier.Classify(ctx, doc)
		if err != nil {
			return result, withID(err, current, types.ErrorKindMalformedDocument)
		}

		switch outcome.Kind {
		case types.OutcomeMerged:
			next := outcome.Successor
			if _, ok := seen[next]; ok {
				return result, mergeLoopError(current, fmt.Sprintf("merge chain revisits %s", next))
			}
			if len(result.Hops) >= maxHops {
				return result, mergeLoopError(current, fmt.Sprintf("merge chain exceeds %d hops", maxHops))
			}
			log.Ctx(ctx).Info().
				Str("id", current.String()).
				Str("successor", next.String()).
				Int("hop", len(result.Hops)+1).
				Msg("identifier merged, following successor")
			seen[next] = struct{}{}
			result.Hops = append(result.Hops, next)
			current = next
		case types.OutcomeUnsupported:
			result.Terminal = current
			result.Outcome = types.OutcomeUnsupported
			result.Records = []types.SnpRecord{{ID: current, Unsupported: true}}
			return result, nil
		default:
			records, err := e.extract(ctx, current, doc)
			if err != nil {
				return result, err
			}
			result.Terminal = current
			result.Outcome = types.OutcomeActive
			result.Records = records
			return result, nil
		}
	}
}

func (e ResolutionEngine) load(ctx context.Context, id types.Identifier) (ports.Node, error) {
	raw, err := e.Source.Load(ctx, id)
	if err != nil {
		return nil, types.NewResolveError(types.ErrorKindFetchFailed, id, err)
	}
	doc, err := e.Parser.Parse(raw)
	if err != nil {
		return nil, types.NewResolveError(types.ErrorKindMalformedDocument, id, err)
	}
	return doc, nil
}

// extract builds one record per dataset row, or a single zero-result
// record when the page has no decodable row.
func (e ResolutionEngine) extract(ctx context.Context, id types.Identifier, doc ports.Node) ([]types.SnpRecord, error) {
	position, build, err := e.Extractor.ExtractPosition(ctx, doc)
	if err != nil {
		return nil, withID(err, id, types.ErrorKindMissingPosition)
	}
	rows, err := e.Extractor.ExtractRows(ctx, doc)
	if err != nil {
		return nil, withID(err, id, types.ErrorKindDecode)
	}
	if len(rows) == 0 {
		return []types.SnpRecord{{ID: id, Position: position, Build: build}}, nil
	}
	records := make([]types.SnpRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, types.SnpRecord{
			ID:          id,
			Position:    position,
			Build:       build,
			SampleSize:  row.SampleSize,
			Frequencies: row.Frequencies,
		})
	}
	return records, nil
}

func mergeLoopError(id types.Identifier, msg string) error {
	return types.NewResolveError(types.ErrorKindMergeLoopSuspected, id, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg))
}
