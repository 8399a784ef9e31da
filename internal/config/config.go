// Package config holds the CLI runtime configuration.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the resolved CLI configuration, populated from flags and the
// SEALFILE_* environment.
type Config struct {
	// Parallel is the number of files processed concurrently.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`

	// Delete removes the source file after successful processing.
	Delete bool `mapstructure:"delete"`

	// Stats prints a summary after processing.
	Stats bool `mapstructure:"stats"`

	// Progress prints per-file progress milestones.
	Progress bool `mapstructure:"progress"`

	// Suffix is appended to encrypted output filenames.
	Suffix string `mapstructure:"suffix" validate:"required"`

	// Decrypt selects decryption; set by the subcommand, not a flag.
	Decrypt bool

	// Files are the positional arguments.
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}
