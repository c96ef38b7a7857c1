// Package config handles plantgen configuration loading and management.
package config

import "time"

// Config holds all plantgen settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation" toml:"generation"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Watch      WatchConfig      `yaml:"watch" toml:"watch"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GenerationConfig holds mesh generation settings.
type GenerationConfig struct {
	Preset     string  `yaml:"preset" toml:"preset"` // Empty uses the reference sprout
	MaxBones   int     `yaml:"max_bones" toml:"max_bones"`
	CloseSeams bool    `yaml:"close_seams" toml:"close_seams"`
	MinArea    float32 `yaml:"min_area" toml:"min_area"`
}

// OutputConfig holds mesh output settings.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // obj or bin
	Path   string `yaml:"path" toml:"path"`
}

// WatchConfig holds settings for regenerating on preset changes.
type WatchConfig struct {
	Debounce Duration `yaml:"debounce" toml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Preset:     "",
			MaxBones:   4096,
			CloseSeams: false,
			MinArea:    0,
		},
		Output: OutputConfig{
			Format: "obj",
			Path:   "plant.obj",
		},
		Watch: WatchConfig{
			Debounce: Duration(200 * time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
