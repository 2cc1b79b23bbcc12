package cms

import "errors"

var ErrInvalidConfig = errors.New("cms: invalid configuration")

// LoggingConfig controls the structured logger the module builds when no
// provider is injected.
type LoggingConfig struct {
	Level     string `json:"level" yaml:"level"`
	Format    string `json:"format" yaml:"format"`
	AddSource bool   `json:"add_source" yaml:"add_source"`
}

// MarkdownConfig controls the goldmark renderer shared by pages and posts.
type MarkdownConfig struct {
	HardWraps bool `json:"hard_wraps" yaml:"hard_wraps"`
	Unsafe    bool `json:"unsafe" yaml:"unsafe"`
}

// Config captures the module's wiring options.
type Config struct {
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Markdown MarkdownConfig `json:"markdown" yaml:"markdown"`
	// Seed populates the module with the SprouX site content on startup.
	Seed bool `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the configuration used when the caller passes a zero
// Config.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Markdown: MarkdownConfig{
			Unsafe: true,
		},
	}
}

// Validate checks configuration consistency before the module is wired.
func (c Config) Validate() error {
	switch c.Logging.Format {
	case "", "json", "console", "pretty":
	default:
		return ErrInvalidConfig
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return ErrInvalidConfig
	}
	return nil
}
