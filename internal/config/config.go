package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Terminal modes.
const (
	TerminalExec  = "exec"
	TerminalPrint = "print"
)

// Config captures the per-workspace scaffolding configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Components ComponentsConfig `yaml:"components"`
	Templates  TemplatesConfig  `yaml:"templates"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Log        LogConfig        `yaml:"log"`
}

// GeneratorConfig names the package.json script and subcommand that create
// routes and components.
type GeneratorConfig struct {
	Script     string `yaml:"script"`
	Subcommand string `yaml:"subcommand"`
}

// ComponentsConfig controls where rendered components are written.
type ComponentsConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
	Inline    bool   `yaml:"inline,omitempty"`
}

// TemplatesConfig controls the template search roots.
type TemplatesConfig struct {
	InstallRoot string `yaml:"install_root,omitempty"`
	RuntimeRoot string `yaml:"runtime_root,omitempty"`
	Builtin     *bool  `yaml:"builtin,omitempty"`
	CacheSize   int    `yaml:"cache_size"`
}

// BuiltinEnabled returns the effective builtin flag applying defaults.
func (t TemplatesConfig) BuiltinEnabled() bool {
	if t.Builtin == nil {
		return true
	}
	return *t.Builtin
}

// TerminalConfig controls how generator commands are dispatched.
type TerminalConfig struct {
	Mode  string `yaml:"mode"`
	Shell string `yaml:"shell,omitempty"`
}

// LogConfig sets the log level written to the log file.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Generator: GeneratorConfig{
			Script:     "qwik",
			Subcommand: "new",
		},
		Components: ComponentsConfig{
			Dir:       "src/components",
			Extension: "tsx",
		},
		Templates: TemplatesConfig{
			Builtin:   boolPtr(true),
			CacheSize: 16,
		},
		Terminal: TerminalConfig{
			Mode: TerminalExec,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills fields the YAML left empty.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Generator.Script == "" {
		c.Generator.Script = defaults.Generator.Script
	}
	if c.Generator.Subcommand == "" {
		c.Generator.Subcommand = defaults.Generator.Subcommand
	}
	if c.Components.Dir == "" {
		c.Components.Dir = defaults.Components.Dir
	}
	if c.Components.Extension == "" {
		c.Components.Extension = defaults.Components.Extension
	}
	if c.Templates.Builtin == nil {
		c.Templates.Builtin = boolPtr(true)
	}
	if c.Templates.CacheSize < 0 {
		c.Templates.CacheSize = 0
	}
	if c.Terminal.Mode == "" {
		c.Terminal.Mode = defaults.Terminal.Mode
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
