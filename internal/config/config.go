// Package config handles lal configuration: file locations, output names and
// the affiliation placeholders.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lal-tools/lal/internal/author"
)

// Config represents lal configuration stored in lal.yml.
type Config struct {
	Input          string        `yaml:"input"`                    // Author table to load
	OutputDir      string        `yaml:"output_dir"`               // Directory receiving every output file
	InoutFile      string        `yaml:"inout_file"`               // Round-trip table, reloadable as input
	WordFile       string        `yaml:"word_file"`                // Citation block
	ListFile       string        `yaml:"list_file"`                // Plain name list
	SortedFile     string        `yaml:"sorted_file"`              // Alphabetical name list
	WorkbookFile   string        `yaml:"workbook_file,omitempty"`  // Optional xlsx export, empty disables it
	Sentinels      []string      `yaml:"sentinels,omitempty"`      // Placeholders meaning "no affiliation"
	ScrollCooldown time.Duration `yaml:"scroll_cooldown,omitempty"` // Pause after auto-scrolling during a drag
}

// Default file names, matching the long-author-list conventions.
const (
	DefaultInput        = "lal_data.txt"
	DefaultInoutFile    = "lal_inout.txt"
	DefaultWordFile     = "lal_parsed_word.txt"
	DefaultListFile     = "lal_parsed_list.txt"
	DefaultSortedFile   = "lal_parsed_sorted.txt"
	DefaultWorkbookFile = "lal_parsed.xlsx"

	DefaultScrollCooldown = 500 * time.Millisecond
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Input:          DefaultInput,
		OutputDir:      ".",
		InoutFile:      DefaultInoutFile,
		WordFile:       DefaultWordFile,
		ListFile:       DefaultListFile,
		SortedFile:     DefaultSortedFile,
		Sentinels:      append([]string(nil), author.DefaultSentinels...),
		ScrollCooldown: DefaultScrollCooldown,
	}
}

// Load reads configuration from path. An empty path searches the working
// directory and then the user config directory; if neither holds a file the
// defaults are returned. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required value is set.
func (c *Config) Validate() error {
	required := map[string]string{
		"input":       c.Input,
		"inout_file":  c.InoutFile,
		"word_file":   c.WordFile,
		"list_file":   c.ListFile,
		"sorted_file": c.SortedFile,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, key)
		}
	}
	if c.ScrollCooldown < 0 {
		return fmt.Errorf("%w: scroll_cooldown is negative", ErrInvalidConfig)
	}
	return nil
}

// Save writes configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SentinelSet returns the configured placeholders as a lookup set.
func (c *Config) SentinelSet() author.Sentinels {
	return author.NewSentinels(c.Sentinels...)
}

// InputPath returns the expanded path of the author table.
func (c *Config) InputPath() string {
	return ExpandPath(c.Input)
}

// OutputPath joins an output file name onto the output directory.
// Absolute names are returned unchanged.
func (c *Config) OutputPath(name string) string {
	name = ExpandPath(name)
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	dir := ExpandPath(c.OutputDir)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
