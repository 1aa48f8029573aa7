package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/getmockd/fakegen/pkg/cliconfig"
	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/logging"
	"github.com/getmockd/fakegen/pkg/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app is the state shared by the command tree during one invocation.
type app struct {
	configPath string
	cfg        *cliconfig.CLIConfig
	logger     *slog.Logger
	logFile    *os.File
}

// NewRootCmd creates the fakegen command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fakegen [file]",
		Short: "fakegen generates fake JSON data from a definition file",
		Long: `fakegen compiles a definition file (JSON or YAML) that names a generator
for every field, then evaluates it once per record:

  {"name": {"fake_type": "name", "lang": "EN"},
   "tags": {"fake_type": "words", "lang": "EN", "min": 1, "max": 4}}

Use "-" to read the definition from stdin. Output keys are always sorted.

Configuration can be provided via flags, FAKEGEN_* environment variables,
.fakegenrc.yaml in the current directory, or ~/.config/fakegen/config.yaml.`,
		Example: `  fakegen user.json
  fakegen --json user.json --count 10 --seed 42
  cat user.yaml | fakegen - -c 3 --compact`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true, // We handle errors in Main()
		PersistentPreRunE: a.setup,
		RunE:              a.runGenerate,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default: .fakegenrc.yaml, then the global config)")
	pf.String("lang-policy", string(locale.PolicyFallback), "Unknown lang codes: fallback (use EN) or strict (fail)")
	pf.Int("max-count", schema.DefaultMaxCount, "Largest array count a definition may request")
	pf.Int("max-depth", schema.DefaultMaxDepth, "Deepest array/map nesting a definition may use")
	pf.String("log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.String("log-format", cliconfig.DefaultLogFormat, "Log format (text, json)")
	pf.String("log-file", "", "Also append logs to this file")

	f := rootCmd.Flags()
	f.StringP("json", "j", "", "Definition file (alternative to the positional argument)")
	f.IntP("count", "c", cliconfig.DefaultCount, "Number of records; more than 1 emits a JSON array")
	f.Uint64("seed", 0, "Seed for reproducible output")
	f.Int("workers", cliconfig.DefaultWorkers(), "Parallel workers for large counts")
	f.StringP("output", "o", "", "Write output to this file instead of stdout")
	f.Bool("compact", false, "Emit compact JSON")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newLintCmd(a),
		newSchemaCmd(a),
		newTagsCmd(),
		newConfigCmd(a),
		newAddCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Main runs the CLI with os.Args and returns the exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{}
	defer a.close()
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// setup loads the layered configuration, applies explicitly set flags on
// top and builds the logger. It runs before every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	lc := logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		lc.Extra = f
	}

	a.cfg = cfg
	a.logger = logging.New(lc)
	a.logger.Debug("configuration loaded", "command", cmd.Name(), "sources", cfg.Sources)
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// compiler returns a schema compiler configured from the loaded config.
func (a *app) compiler() *schema.Compiler {
	policy, _ := locale.ParsePolicy(a.cfg.LangPolicy) // checked by Validate
	return schema.NewCompiler(schema.Options{
		MaxDepth:     a.cfg.MaxDepth,
		MaxCount:     a.cfg.MaxCount,
		LocalePolicy: policy,
		Logger:       a.logger,
	})
}

// flagKeys maps flag names to configuration keys.
var flagKeys = []struct{ flag, key string }{
	{"count", "count"},
	{"seed", "seed"},
	{"workers", "workers"},
	{"lang-policy", "langPolicy"},
	{"max-count", "maxCount"},
	{"max-depth", "maxDepth"},
	{"output", "output"},
	{"compact", "compact"},
	{"log-level", "logLevel"},
	{"log-format", "logFormat"},
	{"log-file", "logFile"},
}

// applyFlags copies the flags the user actually set into cfg. Flags left
// at their defaults do not override files or the environment.
func applyFlags(flags *pflag.FlagSet, cfg *cliconfig.CLIConfig) error {
	var errs []error
	for _, fk := range flagKeys {
		fl := flags.Lookup(fk.flag)
		if fl == nil || !fl.Changed {
			continue
		}
		var err error
		switch fk.key {
		case "count":
			cfg.Count, err = flags.GetInt(fk.flag)
		case "seed":
			var seed uint64
			seed, err = flags.GetUint64(fk.flag)
			cfg.Seed = &seed
		case "workers":
			cfg.Workers, err = flags.GetInt(fk.flag)
		case "langPolicy":
			cfg.LangPolicy, err = flags.GetString(fk.flag)
		case "maxCount":
			cfg.MaxCount, err = flags.GetInt(fk.flag)
		case "maxDepth":
			cfg.MaxDepth, err = flags.GetInt(fk.flag)
		case "output":
			cfg.Output, err = flags.GetString(fk.flag)
		case "compact":
			cfg.Compact, err = flags.GetBool(fk.flag)
		case "logLevel":
			cfg.LogLevel, err = flags.GetString(fk.flag)
		case "logFormat":
			cfg.LogFormat, err = flags.GetString(fk.flag)
		case "logFile":
			cfg.LogFile, err = flags.GetString(fk.flag)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfg.Sources[fk.key] = cliconfig.SourceFlag
	}
	return errors.Join(errs...)
}
