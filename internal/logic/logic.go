// Package logic ties passphrase acquisition, file processing, and reporting
// together for the CLI commands.
package logic

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/absfs/absfs"
	"github.com/dustin/go-humanize"

	"github.com/sealfile/sealfile/internal/config"
	"github.com/sealfile/sealfile/internal/passphrase"
	"github.com/sealfile/sealfile/internal/processor"
)

// Run acquires the passphrase, processes the configured files, and prints
// the optional summary.
func Run(ctx context.Context, cfg *config.Config, fsys absfs.FileSystem) error {
	password, err := acquirePassphrase(cfg)
	if err != nil {
		return err
	}
	defer passphrase.Zero(password)

	start := time.Now()

	proc := processor.New(cfg, fsys, password)

	processed, errored, totalSize, err := proc.ProcessFiles(ctx)

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running %s: %w", operation(cfg), err)
	}

	return nil
}

func acquirePassphrase(cfg *config.Config) ([]byte, error) {
	if cfg.Decrypt {
		return passphrase.Get("Enter passphrase: ")
	}

	// Confirmation guards against locking a file behind a typo.
	return passphrase.GetWithConfirm("Enter passphrase: ", "Confirm passphrase: ")
}

func operation(cfg *config.Config) string {
	if cfg.Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
