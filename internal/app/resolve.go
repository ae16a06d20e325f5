package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/core"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// Resolve resolves one identifier and appends its record lines to the sink.
// The sink is probed before any network traffic.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if err := s.checkSink(); err != nil {
		return ResolveResult{}, err
	}
	id, err := parseIdentifier(req.ID)
	if err != nil {
		return ResolveResult{}, err
	}
	return s.resolveOne(ctx, id)
}

func (s Service) resolveOne(ctx context.Context, id types.Identifier) (ResolveResult, error) {
	resolution, err := s.engine().Resolve(ctx, id)
	if err != nil {
		return ResolveResult{Resolution: resolution}, err
	}
	lines := core.FormatResolution(resolution)
	for _, line := range lines {
		if err := s.Sink.WriteRecord(line); err != nil {
			return ResolveResult{Resolution: resolution}, types.NewResolveError(types.ErrorKindOutputUnwritable, id, err)
		}
	}
	return ResolveResult{Resolution: resolution, Lines: lines}, nil
}

func (s Service) checkSink() error {
	if s.Sink == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record sink is required")
	}
	if err := s.Sink.CheckWritable(); err != nil {
		return types.NewResolveError(types.ErrorKindOutputUnwritable, "", err)
	}
	return nil
}

func parseIdentifier(value string) (types.Identifier, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", types.NewResolveError(types.ErrorKindInvalidIdentifier, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("identifier is required"))
	}
	id, ok := types.ParseIdentifier(trimmed)
	if !ok {
		return "", types.NewResolveError(types.ErrorKindInvalidIdentifier, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%q is not an rs identifier", trimmed)))
	}
	return id, nil
}
