package cliconfig

import (
	"runtime"

	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/logging"
	"github.com/getmockd/fakegen/pkg/schema"
)

// DefaultCount is the number of records generated when no count is given.
const DefaultCount = 1

// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = string(logging.FormatText)

// DefaultWorkers returns the default worker count, one per CPU.
func DefaultWorkers() int {
	return max(runtime.NumCPU(), 1)
}

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Count:      DefaultCount,
		Workers:    DefaultWorkers(),
		LangPolicy: string(locale.PolicyFallback),
		MaxCount:   schema.DefaultMaxCount,
		MaxDepth:   schema.DefaultMaxDepth,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
		Sources:    make(map[string]string),
	}

	for _, key := range Keys {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
