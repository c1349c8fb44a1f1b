// Package project locates and parses quill.toml, the optional per-project
// configuration for the checker.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"quill/internal/checker"
	"quill/internal/diag"
)

// ConfigFileName is the manifest searched for upward from the start directory.
const ConfigFileName = "quill.toml"

// Config mirrors the quill.toml schema.
type Config struct {
	Style  StyleConfig  `toml:"style"`
	Output OutputConfig `toml:"output"`
}

// StyleConfig tunes the rule battery. Zero values mean "use the default".
type StyleConfig struct {
	MaxSentenceWords int      `toml:"max_sentence_words"`
	ContextWindow    int      `toml:"context_window"`
	MaxIssues        int      `toml:"max_issues"`
	Disabled         []string `toml:"disabled"`
}

// OutputConfig sets display defaults that CLI flags can override.
type OutputConfig struct {
	Format string `toml:"format"` // pretty|json|sarif
	Color  string `toml:"color"`  // auto|on|off
}

// Manifest is a located and parsed configuration file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks upward from startDir looking for quill.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the configuration at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover combines Find and Load. ok is false when no manifest exists.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func (c Config) validate() error {
	for _, tag := range c.Style.Disabled {
		if _, ok := diag.CodeForTag(tag); !ok {
			return fmt.Errorf("unknown rule tag %q in style.disabled", tag)
		}
	}
	switch c.Output.Format {
	case "", "pretty", "json", "sarif":
	default:
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("unknown output.color %q", c.Output.Color)
	}
	if c.Style.MaxSentenceWords < 0 {
		return fmt.Errorf("style.max_sentence_words must not be negative")
	}
	if c.Style.ContextWindow < 0 {
		return fmt.Errorf("style.context_window must not be negative")
	}
	return nil
}

// CheckerOptions maps the config onto checker options, keeping defaults for
// unset fields. Validation already happened in Load.
func (c Config) CheckerOptions() checker.Options {
	opts := checker.DefaultOptions()
	if c.Style.MaxSentenceWords > 0 {
		opts.Params.MaxSentenceWords = c.Style.MaxSentenceWords
	}
	if c.Style.ContextWindow > 0 {
		opts.Params.ContextWindow = c.Style.ContextWindow
	}
	if c.Style.MaxIssues > 0 {
		opts.MaxIssues = c.Style.MaxIssues
	}
	if len(c.Style.Disabled) > 0 {
		opts.Disabled = make(map[diag.Code]bool, len(c.Style.Disabled))
		for _, tag := range c.Style.Disabled {
			if code, ok := diag.CodeForTag(tag); ok {
				opts.Disabled[code] = true
			}
		}
	}
	return opts
}
