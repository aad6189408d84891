package config

import "os"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Files  FilesConfig  `json:"files"`
	Output OutputConfig `json:"output"`
}

type FilesConfig struct {
	MaxFileSize int64  `json:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)
	DefaultPerm uint32 `json:"default_perm"`  // Default: 0o644, used when saving a new file
	Concurrency int    `json:"concurrency"`   // Default: 8 files decoded in parallel
}

type OutputConfig struct {
	Format string `json:"format"` // Default: "text" ("text" or "json")
	Color  bool   `json:"color"`  // Default: true, only applied on a terminal
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			MaxFileSize: 20 * 1024 * 1024,
			DefaultPerm: 0o644,
			Concurrency: 8,
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
	}
}

// FileMode returns DefaultPerm as an os.FileMode.
func (c FilesConfig) FileMode() os.FileMode {
	return os.FileMode(c.DefaultPerm) & os.ModePerm
}
