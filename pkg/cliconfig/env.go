package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvConfig     = "FAKEGEN_CONFIG"
	EnvCount      = "FAKEGEN_COUNT"
	EnvSeed       = "FAKEGEN_SEED"
	EnvWorkers    = "FAKEGEN_WORKERS"
	EnvLangPolicy = "FAKEGEN_LANG_POLICY"
	EnvMaxCount   = "FAKEGEN_MAX_COUNT"
	EnvMaxDepth   = "FAKEGEN_MAX_DEPTH"
	EnvOutput     = "FAKEGEN_OUTPUT"
	EnvCompact    = "FAKEGEN_COMPACT"
	EnvLogLevel   = "FAKEGEN_LOG_LEVEL"
	EnvLogFormat  = "FAKEGEN_LOG_FORMAT"
	EnvLogFile    = "FAKEGEN_LOG_FILE"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment. Malformed
// numbers are reported together.
func LoadEnvConfig(cfg *CLIConfig) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	var errs []error

	envInt := func(name, key string, dst *int) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not an integer", name, v))
			return
		}
		*dst = n
		cfg.Sources[key] = SourceEnv
	}
	envString := func(name, key string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}

	envInt(EnvCount, "count", &cfg.Count)
	envInt(EnvWorkers, "workers", &cfg.Workers)
	envInt(EnvMaxCount, "maxCount", &cfg.MaxCount)
	envInt(EnvMaxDepth, "maxDepth", &cfg.MaxDepth)
	envString(EnvLangPolicy, "langPolicy", &cfg.LangPolicy)
	envString(EnvOutput, "output", &cfg.Output)
	envString(EnvLogLevel, "logLevel", &cfg.LogLevel)
	envString(EnvLogFormat, "logFormat", &cfg.LogFormat)
	envString(EnvLogFile, "logFile", &cfg.LogFile)

	// FAKEGEN_SEED
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not an unsigned integer", EnvSeed, v))
		} else {
			cfg.Seed = &seed
			cfg.Sources["seed"] = SourceEnv
		}
	}

	// FAKEGEN_COMPACT
	if v := os.Getenv(EnvCompact); v != "" {
		cfg.Compact = v == "true" || v == "1" || v == "yes"
		cfg.Sources["compact"] = SourceEnv
	}

	return errors.Join(errs...)
}
