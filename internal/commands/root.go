// Package commands defines the sealfile command tree.
package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sealfile/sealfile"
)

// NewRootCommand creates the root command with the shared flag set and
// environment binding.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "sealfile [flags] command [flags] files...",
		Short:   "Password-based file encryption",
		Long:    "Encrypts and decrypts files with a password.\nThe original filename and content type travel inside the encrypted container\nand are restored on decryption.",
		Version: version,

		SilenceUsage: true,
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful processing")
	root.PersistentFlags().Bool("stats", false, "Print a summary after processing")
	root.PersistentFlags().Bool("progress", false, "Print per-file progress")
	root.PersistentFlags().String("suffix", sealfile.EncryptedSuffix, "Suffix appended to encrypted files")

	viper.SetEnvPrefix("SEALFILE")
	viper.AutomaticEnv()

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand())

	return root
}
