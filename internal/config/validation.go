package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Files.MaxFileSize < 1 {
		errs = append(errs, "files.max_file_size must be >= 1")
	}
	if c.Files.DefaultPerm > 0o777 {
		errs = append(errs, "files.default_perm must be <= 0o777 (511)")
	}
	if c.Files.Concurrency < 1 {
		errs = append(errs, "files.concurrency must be >= 1")
	}

	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		errs = append(errs, fmt.Sprintf("output.format must be %q or %q", FormatText, FormatJSON))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
