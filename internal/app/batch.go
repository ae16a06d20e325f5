package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// Batch resolves every identifier listed in req.ListPath in file order.
// A failing identifier is logged and recorded, and the run moves on; only
// an unwritable sink, an unreadable list or cancellation stop it.
func (s Service) Batch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	listPath := strings.TrimSpace(req.ListPath)
	if listPath == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("identifier list path is required")
	}
	if s.Identifiers == nil {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("identifier list reader is required")
	}
	if err := s.checkSink(); err != nil {
		return BatchResult{}, err
	}
	values, err := s.Identifiers.ReadIdentifiers(listPath)
	if err != nil {
		return BatchResult{}, err
	}

	logger := log.Ctx(ctx)
	result := BatchResult{}
	for _, value := range values {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++
		id, err := parseIdentifier(value)
		if err == nil {
			var single ResolveResult
			single, err = s.resolveOne(ctx, id)
			result.Written += len(single.Lines)
		}
		if err == nil {
			continue
		}
		kind := types.KindOf(err)
		if kind == types.ErrorKindOutputUnwritable {
			return result, err
		}
		logger.Error().
			Err(err).
			Str("id", value).
			Str("kind", string(kind)).
			Msg("identifier failed")
		result.Failures = append(result.Failures, BatchFailure{ID: value, Kind: kind, Err: err})
	}
	logger.Info().
		Int("processed", result.Processed).
		Int("written", result.Written).
		Int("failed", len(result.Failures)).
		Msg("batch finished")
	return result, nil
}
