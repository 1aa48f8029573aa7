// Package cliconfig provides configuration types and loading for the fakegen CLI.
//
// Values are layered with the following precedence (highest first):
//
//  1. Command-line flags
//  2. Environment variables (FAKEGEN_* prefix)
//  3. Local config file (.fakegenrc.yaml in the current directory), or the
//     file named by --config / FAKEGEN_CONFIG
//  4. Global config file ($XDG_CONFIG_HOME/fakegen/config.yaml)
//  5. Default values
//
// The source of every value is tracked so `fakegen config` can explain
// where it came from.
package cliconfig

// CLIConfig represents the complete configuration for the fakegen CLI.
type CLIConfig struct {
	// Generation settings
	Count   int     `yaml:"count" json:"count"`
	Seed    *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Workers int     `yaml:"workers" json:"workers"`

	// Compile settings
	LangPolicy string `yaml:"langPolicy" json:"langPolicy"`
	MaxCount   int    `yaml:"maxCount" json:"maxCount"`
	MaxDepth   int    `yaml:"maxDepth" json:"maxDepth"`

	// Output settings
	Output  string `yaml:"output,omitempty" json:"output,omitempty"`
	Compact bool   `yaml:"compact" json:"compact"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty" json:"logFile,omitempty"`

	// Sources tracks where each value came from, keyed by YAML name.
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the YAML keys present in a loaded file, so an
	// explicit false or zero can override a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Keys lists the configuration keys in display order.
var Keys = []string{
	"count", "seed", "workers",
	"langPolicy", "maxCount", "maxDepth",
	"output", "compact",
	"logLevel", "logFormat", "logFile",
}
