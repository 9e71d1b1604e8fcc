package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Merge       MergeConfig       `yaml:"merge"`
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Progress    ProgressConfig    `yaml:"progress"`
}

type MergeConfig struct {
	Dedup string `yaml:"dedup"`
}

type InputConfig struct {
	Extensions       []string `yaml:"extensions"`
	NormalizeUnicode bool     `yaml:"normalize_unicode"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Suffix string `yaml:"suffix"`
}

// PathsConfig is used by the batch and watch commands
type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ProgressConfig struct {
	Disabled bool `yaml:"disabled"`
}

const (
	FormatText = "text"
	FormatDocx = "docx"
)

// Default returns a validated configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file and validates it. An empty path yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks enumerated settings and fills defaults
func (c *Config) Validate() error {
	if c.Merge.Dedup == "" {
		c.Merge.Dedup = "consecutive"
	}
	c.Merge.Dedup = strings.ToLower(c.Merge.Dedup)
	if c.Merge.Dedup != "consecutive" && c.Merge.Dedup != "all" {
		return fmt.Errorf("merge.dedup must be consecutive or all, got %q", c.Merge.Dedup)
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Format != FormatText && c.Output.Format != FormatDocx {
		return fmt.Errorf("output.format must be text or docx, got %q", c.Output.Format)
	}

	if len(c.Input.Extensions) == 0 {
		c.Input.Extensions = []string{".txt", ".srt"}
	}
	for i, ext := range c.Input.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Input.Extensions[i] = ext
	}

	if c.Output.Suffix == "" {
		c.Output.Suffix = ".merged"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// ValidatePaths checks the directories the watch command needs
func (c *Config) ValidatePaths() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	return nil
}

// IsTranscript reports whether path has one of the configured extensions
func (c *Config) IsTranscript(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.Input.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
