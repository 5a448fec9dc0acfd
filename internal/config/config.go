// Package config loads and validates cratedoc configuration.
//
// Configuration is optional: with no config file present, the defaults
// reproduce the historical build script exactly (remove target/doc, then run
// `cargo doc --no-deps` with RUSTDOCFLAGS pointing at ./katex.html).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
)

// DefaultConfigPath is the config file looked up when no -c flag is given.
const DefaultConfigPath = "cratedoc.yaml"

// Config is the top-level cratedoc configuration.
type Config struct {
	// Tool is the documentation generator binary (default "cargo").
	Tool string `yaml:"tool"`
	// Subcommand is the generator subcommand (default "doc").
	Subcommand string `yaml:"subcommand"`
	// NoDeps controls whether --no-deps is passed to the generator.
	NoDeps bool `yaml:"no_deps"`
	// ExtraArgs are appended verbatim after the standard arguments.
	ExtraArgs []string `yaml:"extra_args"`
	// DocDir is the output tree removed before each build.
	DocDir string `yaml:"doc_dir"`
	// Header is the HTML fragment injected into every generated page.
	Header string `yaml:"header"`
	// FlagsVar is the environment variable carrying the injection flag.
	FlagsVar string `yaml:"flags_var"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures the rebuild-on-change loop.
type WatchConfig struct {
	// Paths are the directories watched for source changes.
	Paths []string `yaml:"paths"`
	// Debounce is a duration string (e.g. "2s") coalescing rapid event bursts.
	Debounce string `yaml:"debounce"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Tool:       "cargo",
		Subcommand: "doc",
		NoDeps:     true,
		DocDir:     filepath.Join("target", "doc"),
		Header:     "./katex.html",
		FlagsVar:   "RUSTDOCFLAGS",
		Watch: WatchConfig{
			Paths:    []string{"src"},
			Debounce: "2s",
		},
	}
}

// Load reads the configuration file at configPath, applying defaults for any
// unset field. A missing file is not an error; the defaults are returned so
// the tool works in an unconfigured crate.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists (never overrides the process environment)
	loadEnvFiles()

	cfg := Default()
	applyEnvOverrides(cfg)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, cderrors.ConfigLoadFailed(configPath, err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, cderrors.ConfigLoadFailed(configPath, err)
	}

	if cfg.Subcommand == "" {
		cfg.Subcommand = "doc"
	}
	if len(cfg.Watch.Paths) == 0 {
		cfg.Watch.Paths = []string{"src"}
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = "2s"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the invoker cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return cderrors.ValidationFailed("tool", "must not be empty")
	}
	if strings.ContainsRune(c.Header, 0) {
		return cderrors.ValidationFailed("header", "contains embedded NUL")
	}
	if c.DocDir == "" {
		return cderrors.ValidationFailed("doc_dir", "must not be empty")
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return cderrors.ValidationFailed("watch.debounce", fmt.Sprintf("invalid duration: %v", err))
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce window.
// Validate guarantees the string parses; a zero config falls back to 2s.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// HeaderFlag returns the value assigned to FlagsVar for the generator run.
func (c *Config) HeaderFlag() string {
	return fmt.Sprintf("--html-in-header %s", c.Header)
}

// ToolArgs returns the argument vector passed to the generator binary.
func (c *Config) ToolArgs() []string {
	args := []string{c.Subcommand}
	if c.NoDeps {
		args = append(args, "--no-deps")
	}
	args = append(args, c.ExtraArgs...)
	return args
}

// Init writes a starter configuration file at configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return cderrors.ValidationFailed("config", fmt.Sprintf("%s already exists (use --force to overwrite)", configPath))
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return cderrors.InternalError("failed to marshal default config", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return cderrors.ConfigLoadFailed(configPath, err)
	}
	return nil
}
