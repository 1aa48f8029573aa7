package cli

import "errors"

// Common CLI errors
var (
	ErrNoDefinition     = errors.New("no definition file given - pass a path, --json <path>, or - for stdin")
	ErrConflictingInput = errors.New("give the definition either as an argument or with --json, not both")
	ErrConfig           = errors.New("invalid configuration")
	ErrValidationFailed = errors.New("validation failed")
	ErrLintFailed       = errors.New("lint failed")
	ErrFieldExists      = errors.New("field already exists - use --force to replace it")
	ErrUnsupportedShape = errors.New("add supports leaf and constant generators only")
	ErrUnknownShape     = errors.New("unknown shape")
)
