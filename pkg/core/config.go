// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCompatLevel is the packaging compatibility level assumed
	// when none is configured
	DefaultCompatLevel = 13

	// DefaultObjdumpTool is the binary-metadata dumper invoked per library
	DefaultObjdumpTool = "objdump"

	// DefaultGensymbolsTool is the symbol-versioning processor
	DefaultGensymbolsTool = "dpkg-gensymbols"

	// DefaultOverridesDir is where hand-authored shlibs and symbols
	// override files live, one per package
	DefaultOverridesDir = "debian"
)

// Config holds per-invocation settings. It is threaded explicitly through
// every call and never mutated after load.
type Config struct {
	CompatLevel    int    `yaml:"compat"`
	ObjdumpTool    string `yaml:"objdump_tool"`
	GensymbolsTool string `yaml:"gensymbols_tool"`
	OverridesDir   string `yaml:"overrides_dir"`
	Verbose        bool   `yaml:"verbose"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CompatLevel:    DefaultCompatLevel,
		ObjdumpTool:    DefaultObjdumpTool,
		GensymbolsTool: DefaultGensymbolsTool,
		OverridesDir:   DefaultOverridesDir,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "makeshlibs", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CompatLevel == 0 {
		c.CompatLevel = DefaultCompatLevel
	}
	if c.ObjdumpTool == "" {
		c.ObjdumpTool = DefaultObjdumpTool
	}
	if c.GensymbolsTool == "" {
		c.GensymbolsTool = DefaultGensymbolsTool
	}
	if c.OverridesDir == "" {
		c.OverridesDir = DefaultOverridesDir
	}
}
