package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sealfile/sealfile/internal/config"
	"github.com/sealfile/sealfile/internal/logic"
	"github.com/sealfile/sealfile/internal/vfs"
)

// NewEncryptCommand creates the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Root().PersistentFlags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(args, false)
			if err != nil {
				return err
			}

			return logic.Run(cmd.Context(), cfg, vfs.New())
		},
	}
}

// resolveConfig unmarshals bound flags and environment into the config
// struct and validates it.
func resolveConfig(files []string, decrypt bool) (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Files = files
	cfg.Decrypt = decrypt

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
