package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the complete lox configuration
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	// Plain forces the line-by-line prompt even on a terminal
	Plain bool `toml:"plain"`
}

// OutputConfig holds token and tree output settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
	AST    bool   `toml:"ast"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt: "> ",
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a TOML configuration file. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover returns the first configuration file found in the default
// locations, or an empty string.
func Discover() string {
	paths := []string{
		"./lox.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lox", "config.toml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks that every setting has a supported value
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}

	return nil
}
