package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/logging"
)

// Upper bounds accepted by Validate.
const (
	MaxWorkers    = 1024
	MaxDepthLimit = 1 << 12
)

// Validate checks the merged configuration and reports every problem.
func (c *CLIConfig) Validate() error {
	var errs []error
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be at least 1, got %d", c.Count))
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		errs = append(errs, fmt.Errorf("workers %d is out of range (1-%d)", c.Workers, MaxWorkers))
	}
	if _, err := locale.ParsePolicy(c.LangPolicy); err != nil {
		errs = append(errs, fmt.Errorf("langPolicy: %w", err))
	}
	if c.MaxCount < 1 {
		errs = append(errs, fmt.Errorf("maxCount must be at least 1, got %d", c.MaxCount))
	}
	if c.MaxDepth < 1 || c.MaxDepth > MaxDepthLimit {
		errs = append(errs, fmt.Errorf("maxDepth %d is out of range (1-%d)", c.MaxDepth, MaxDepthLimit))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if !strings.EqualFold(c.LogFormat, string(logging.FormatText)) && !strings.EqualFold(c.LogFormat, string(logging.FormatJSON)) {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Value renders the value of key for display. Unset optional values are
// empty.
func (c *CLIConfig) Value(key string) string {
	switch key {
	case "count":
		return strconv.Itoa(c.Count)
	case "seed":
		if c.Seed == nil {
			return ""
		}
		return strconv.FormatUint(*c.Seed, 10)
	case "workers":
		return strconv.Itoa(c.Workers)
	case "langPolicy":
		return c.LangPolicy
	case "maxCount":
		return strconv.Itoa(c.MaxCount)
	case "maxDepth":
		return strconv.Itoa(c.MaxDepth)
	case "output":
		return c.Output
	case "compact":
		return strconv.FormatBool(c.Compact)
	case "logLevel":
		return c.LogLevel
	case "logFormat":
		return c.LogFormat
	case "logFile":
		return c.LogFile
	}
	return ""
}
