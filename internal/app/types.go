package app

import "github.com/Hajin-Jeon/KRGDB-parser/internal/types"

type ResolveRequest struct {
	ID string
}

type ResolveResult struct {
	Resolution types.Resolution
	Lines      []string
}

type BatchRequest struct {
	ListPath string
}

type BatchFailure struct {
	ID   string
	Kind types.ErrorKind
	Err  error
}

type BatchResult struct {
	Processed int
	Written   int
	Failures  []BatchFailure
}

type RunRequest struct {
	Input string
	Batch bool
}

type RunMode string

const (
	RunModeSingle RunMode = "single"
	RunModeBatch  RunMode = "batch"
)

type RunResult struct {
	Mode   RunMode
	Single ResolveResult
	Batch  BatchResult
}

type InspectRequest struct {
	ID string
}
