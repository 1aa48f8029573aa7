package cliconfig

import (
	"strings"
	"testing"
)

func TestCLIConfig_Validate(t *testing.T) {
	valid := func(mut func(*CLIConfig)) CLIConfig {
		cfg := *NewDefault()
		mut(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  CLIConfig
		wantErr string
	}{
		{
			name:    "valid defaults",
			config:  *NewDefault(),
			wantErr: "",
		},
		{
			name: "valid custom values",
			config: valid(func(c *CLIConfig) {
				c.Count = 500
				c.Workers = 8
				c.LangPolicy = "strict"
				c.LogLevel = "DEBUG"
				c.LogFormat = "JSON"
			}),
			wantErr: "",
		},
		{
			name:    "count zero",
			config:  valid(func(c *CLIConfig) { c.Count = 0 }),
			wantErr: "count must be at least 1, got 0",
		},
		{
			name:    "workers too high",
			config:  valid(func(c *CLIConfig) { c.Workers = 5000 }),
			wantErr: "workers 5000 is out of range",
		},
		{
			name:    "workers negative",
			config:  valid(func(c *CLIConfig) { c.Workers = -1 }),
			wantErr: "workers -1 is out of range",
		},
		{
			name:    "unknown lang policy",
			config:  valid(func(c *CLIConfig) { c.LangPolicy = "loose" }),
			wantErr: `langPolicy: invalid locale policy "loose"`,
		},
		{
			name:    "max count zero",
			config:  valid(func(c *CLIConfig) { c.MaxCount = 0 }),
			wantErr: "maxCount must be at least 1, got 0",
		},
		{
			name:    "max depth too high",
			config:  valid(func(c *CLIConfig) { c.MaxDepth = 100000 }),
			wantErr: "maxDepth 100000 is out of range",
		},
		{
			name:    "unknown log level",
			config:  valid(func(c *CLIConfig) { c.LogLevel = "loud" }),
			wantErr: `logLevel "loud" is not one of`,
		},
		{
			name:    "unknown log format",
			config:  valid(func(c *CLIConfig) { c.LogFormat = "xml" }),
			wantErr: `logFormat "xml" is not one of`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
			}
		})
	}
}

func TestCLIConfig_ValidateReportsAll(t *testing.T) {
	cfg := CLIConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors for zero config")
	}
	for _, want := range []string{"count", "workers", "maxCount", "maxDepth", "logLevel", "logFormat"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestMergeConfig_BasicFields(t *testing.T) {
	t.Run("merges non-zero values", func(t *testing.T) {
		target := NewDefault()
		seed := uint64(42)
		source := &CLIConfig{
			Count:    10,
			Seed:     &seed,
			LogLevel: "debug",
		}

		MergeConfig(target, source, SourceLocal)

		if target.Count != 10 {
			t.Errorf("expected count 10, got %d", target.Count)
		}
		if target.Seed == nil || *target.Seed != 42 {
			t.Errorf("expected seed 42, got %v", target.Seed)
		}
		if target.Sources["count"] != SourceLocal {
			t.Errorf("expected source 'local', got %q", target.Sources["count"])
		}
		if target.Sources["workers"] != SourceDefault {
			t.Errorf("expected workers to stay default, got %q", target.Sources["workers"])
		}
	})

	t.Run("does not overwrite with zero values", func(t *testing.T) {
		target := NewDefault()
		source := &CLIConfig{
			Count: 0, // zero value should not overwrite
		}

		MergeConfig(target, source, SourceLocal)

		if target.Count != DefaultCount {
			t.Errorf("expected default count %d, got %d", DefaultCount, target.Count)
		}
	})

	t.Run("handles boolean false with SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Compact = true

		source := &CLIConfig{
			Compact:   false,
			SetFields: map[string]bool{"compact": true},
		}

		MergeConfig(target, source, SourceGlobal)

		if target.Compact {
			t.Error("expected compact to be false after merge")
		}
		if target.Sources["compact"] != SourceGlobal {
			t.Errorf("expected source 'global', got %q", target.Sources["compact"])
		}
	})

	t.Run("does not merge boolean false without SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Compact = true

		MergeConfig(target, &CLIConfig{}, SourceLocal)

		if !target.Compact {
			t.Error("expected compact to remain true without SetFields")
		}
	})

	t.Run("nil source is no-op", func(t *testing.T) {
		target := NewDefault()

		MergeConfig(target, nil, SourceLocal)

		if target.Count != DefaultCount {
			t.Errorf("expected count unchanged, got %d", target.Count)
		}
	})
}

func TestCLIConfig_Value(t *testing.T) {
	cfg := NewDefault()
	if got := cfg.Value("seed"); got != "" {
		t.Errorf("expected empty seed, got %q", got)
	}
	seed := uint64(7)
	cfg.Seed = &seed
	cfg.Compact = true

	for key, want := range map[string]string{
		"count":      "1",
		"seed":       "7",
		"langPolicy": "fallback",
		"compact":    "true",
		"logLevel":   "warn",
		"unknown":    "",
	} {
		if got := cfg.Value(key); got != want {
			t.Errorf("Value(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestNewDefault_SourcesCoverKeys(t *testing.T) {
	cfg := NewDefault()
	for _, key := range Keys {
		if cfg.Sources[key] != SourceDefault {
			t.Errorf("expected %s to be sourced from default, got %q", key, cfg.Sources[key])
		}
	}
}
