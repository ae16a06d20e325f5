package types

type OutcomeKind string

const (
	OutcomeActive      OutcomeKind = "active"
	OutcomeMerged      OutcomeKind = "merged"
	OutcomeUnsupported OutcomeKind = "unsupported"
)

type ErrorKind string

const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindFetchFailed        ErrorKind = "fetch_failed"
	ErrorKindMalformedDocument  ErrorKind = "malformed_document"
	ErrorKindMissingPosition    ErrorKind = "missing_position"
	ErrorKindDecode             ErrorKind = "decode_error"
	ErrorKindMergeLoopSuspected ErrorKind = "merge_loop_suspected"
	ErrorKindInvalidIdentifier  ErrorKind = "invalid_identifier"
	ErrorKindOutputUnwritable   ErrorKind = "output_unwritable"
)
