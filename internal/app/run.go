package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// Run picks single or batch mode from the shape of the input: an rs
// identifier resolves directly, an existing file is read as a list.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	mode, err := DetectMode(req.Input, req.Batch)
	if err != nil {
		return RunResult{}, err
	}
	if mode == RunModeBatch {
		batch, err := s.Batch(ctx, BatchRequest{ListPath: req.Input})
		return RunResult{Mode: mode, Batch: batch}, err
	}
	single, err := s.Resolve(ctx, ResolveRequest{ID: req.Input})
	return RunResult{Mode: mode, Single: single}, err
}

func DetectMode(input string, forceBatch bool) (RunMode, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", types.NewResolveError(types.ErrorKindInvalidIdentifier, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input is required"))
	}
	if !forceBatch {
		if _, ok := types.ParseIdentifier(input); ok {
			return RunModeSingle, nil
		}
	}
	info, err := os.Stat(input)
	if err == nil && !info.IsDir() {
		return RunModeBatch, nil
	}
	notFound := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("input file not found: %s", input))
	if err != nil {
		notFound = notFound.WithCause(err)
	}
	return "", notFound
}
