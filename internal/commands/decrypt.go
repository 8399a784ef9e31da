package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sealfile/sealfile/internal/logic"
	"github.com/sealfile/sealfile/internal/vfs"
)

// NewDecryptCommand creates the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Root().PersistentFlags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(args, true)
			if err != nil {
				return err
			}

			return logic.Run(cmd.Context(), cfg, vfs.New())
		},
	}
}
