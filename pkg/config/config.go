package config

import (
	"fmt"
	"runtime"
)

// Config holds the full dirdiff configuration
type Config struct {
	Diff        DiffConfig        `yaml:"diff"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DiffConfig holds comparison behavior settings
type DiffConfig struct {
	// Exclude lists entry names skipped at every directory level
	Exclude []string `yaml:"exclude"`

	// Comparison selects the content strategy: auto, stream, digest
	Comparison string `yaml:"comparison"`
}

// PerformanceConfig holds tuning knobs
type PerformanceConfig struct {
	// Workers bounds the parallel worker pool (0 = CPU count)
	Workers int `yaml:"workers"`

	// StreamBufferSize is the chunk size for streaming comparison
	StreamBufferSize int `yaml:"stream_buffer_size"`

	// DigestBufferSize is the chunk size for digest computation
	DigestBufferSize int `yaml:"digest_buffer_size"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	// Format selects the renderer: auto, color, plain, json
	Format string `yaml:"format"`
}

// LoggingConfig holds log file settings
type LoggingConfig struct {
	// File is the log file path; empty disables file logging
	File string `yaml:"file"`

	// Format is json or text
	Format string `yaml:"format"`

	// Level is debug, info, warn or error
	Level string `yaml:"level"`

	// MaxSize is the size in bytes before rotation (0 = no rotation)
	MaxSize int64 `yaml:"max_size"`

	// MaxBackups is the number of rotated files to keep
	MaxBackups int `yaml:"max_backups"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Diff: DiffConfig{
			Comparison: "auto",
		},
		Performance: PerformanceConfig{
			Workers:          runtime.NumCPU(),
			StreamBufferSize: 128 * 1024,
			DigestBufferSize: 8 * 1024,
		},
		Output: OutputConfig{
			Format: "auto",
		},
		Logging: LoggingConfig{
			Format:     "json",
			Level:      "info",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Diff.Comparison {
	case "auto", "stream", "digest":
	default:
		return fmt.Errorf("invalid comparison method: %s (valid: auto, stream, digest)", c.Diff.Comparison)
	}

	switch c.Output.Format {
	case "auto", "color", "plain", "json":
	default:
		return fmt.Errorf("invalid output format: %s (valid: auto, color, plain, json)", c.Output.Format)
	}

	if c.Performance.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Performance.Workers)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s (valid: json, text)", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}
