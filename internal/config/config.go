// Package config loads the HCL file describing which flops the scan command
// evaluates.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/flopbluff/poker"
)

// DefaultFile is the config path used when none is given.
const DefaultFile = "flopbluff.hcl"

// Config is the complete configuration file.
type Config struct {
	Settings *Settings    `hcl:"settings,block"`
	Boards   []BoardBlock `hcl:"board,block"`
}

// Settings holds tool-wide options.
type Settings struct {
	LogLevel string `hcl:"log_level,optional"`
	Workers  int    `hcl:"workers,optional"`
}

// BoardBlock names one flop to scan.
type BoardBlock struct {
	Name  string `hcl:"name,label"`
	Cards string `hcl:"cards"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Settings: &Settings{
			LogLevel: "info",
			Workers:  4,
		},
		Boards: []BoardBlock{
			{Name: "dry-ace-high", Cards: "7dAsKh"},
			{Name: "monotone-connected", Cards: "8h7h6h"},
			{Name: "broadway-two-tone", Cards: "QdJdTc"},
			{Name: "paired-low", Cards: "5c5d9h"},
		},
	}
}

// Load reads the HCL file at filename. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for omitted values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Settings == nil {
		cfg.Settings = &Settings{}
	}
	if cfg.Settings.LogLevel == "" {
		cfg.Settings.LogLevel = "info"
	}
	if cfg.Settings.Workers == 0 {
		cfg.Settings.Workers = 4
	}
	return &cfg, nil
}

// Validate checks settings and that every board parses. Card counts are left
// to the classifier so that they surface as its errors.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Settings.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.Settings.LogLevel, err)
	}
	if c.Settings.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Settings.Workers)
	}

	seen := make(map[string]bool, len(c.Boards))
	for _, b := range c.Boards {
		if seen[b.Name] {
			return fmt.Errorf("duplicate board %q", b.Name)
		}
		seen[b.Name] = true
		if _, err := poker.ParseCards(b.Cards); err != nil {
			return fmt.Errorf("board %q: %w", b.Name, err)
		}
	}
	return nil
}
