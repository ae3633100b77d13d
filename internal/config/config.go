package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Editor EditorConfig `yaml:"editor"`
	Lint   LintConfig   `yaml:"lint"`
	Shell  ShellConfig  `yaml:"shell"`
	Log    LogConfig    `yaml:"log"`
	UI     UIConfig     `yaml:"ui"`
}

// EditorConfig configures the mutation engine and its output rendering
type EditorConfig struct {
	Workdir              string   `yaml:"workdir"`                // anchors the suggestion for relative paths (empty = process cwd)
	TabWidth             int      `yaml:"tab_width"`              // tab stop width applied before comparisons and writes (default: 8)
	SnippetContextWindow int      `yaml:"snippet_context_window"` // context lines around a change in previews (default: 4)
	MaxOutputChars       int      `yaml:"max_output_chars"`       // output cap before the truncation notice (default: 16000, negative = no cap)
	AllowedRoots         []string `yaml:"allowed_roots"`          // confine mutating commands to these trees (empty = anywhere)
	DeniedPaths          []string `yaml:"denied_paths"`           // refuse every command under these trees
}

// LintConfig configures post-edit linting
type LintConfig struct {
	Enabled        bool              `yaml:"enabled"`         // lint after mutating commands (requests can override per call)
	Commands       map[string]string `yaml:"commands"`        // file extension (with dot) -> lint command, {file} expands to the path
	TimeoutSeconds int               `yaml:"timeout_seconds"` // per lint command (default: 30)
}

// ShellConfig configures the directory-listing shell collaborator
type ShellConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"` // per command (default: 30)
}

// LogConfig configures the structured log file
type LogConfig struct {
	Path        string `yaml:"path"`        // empty = logging disabled
	Development bool   `yaml:"development"` // console encoder with debug level instead of JSON
}

// UIConfig configures the interactive shell
type UIConfig struct {
	HistoryFile string `yaml:"history_file"` // input history path (empty = ~/.linedit_history)
	Quiet       bool   `yaml:"quiet"`        // suppress non-essential output
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads the YAML config at path, layered over the defaults. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// setDefaults fills required values a sparse config left unset.
func (c *Config) setDefaults() {
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = 8
	}
	if c.Editor.SnippetContextWindow <= 0 {
		c.Editor.SnippetContextWindow = 4
	}
	if c.Editor.MaxOutputChars == 0 {
		c.Editor.MaxOutputChars = 16000
	}

	if c.Lint.Commands == nil {
		c.Lint.Commands = map[string]string{
			".py": "flake8 --isolated {file}",
		}
	}
	if c.Lint.TimeoutSeconds <= 0 {
		c.Lint.TimeoutSeconds = 30
	}

	if c.Shell.TimeoutSeconds <= 0 {
		c.Shell.TimeoutSeconds = 30
	}
}

func (c *Config) ShellTimeout() time.Duration {
	return time.Duration(c.Shell.TimeoutSeconds) * time.Second
}

func (c *Config) LintTimeout() time.Duration {
	return time.Duration(c.Lint.TimeoutSeconds) * time.Second
}
