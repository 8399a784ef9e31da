// Package processor encrypts and decrypts batches of files concurrently.
package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/absfs/absfs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sealfile/sealfile"
	"github.com/sealfile/sealfile/internal/config"
)

// Result is the outcome of processing one file.
type Result struct {
	Input      string
	Output     string
	OutputSize int64
	Err        error
}

// Processor handles the encryption and decryption of files through an
// absfs.FileSystem.
type Processor struct {
	cfg      *config.Config
	fs       absfs.FileSystem
	cipher   *sealfile.FileCipher
	password []byte
	results  chan Result
}

// New creates a Processor. The password is borrowed, not copied; the caller
// remains responsible for zeroizing it.
func New(cfg *config.Config, fsys absfs.FileSystem, password []byte) *Processor {
	return &Processor{
		cfg:      cfg,
		fs:       fsys,
		cipher:   sealfile.New(),
		password: password,
		results:  make(chan Result, len(cfg.Files)),
	}
}

// ProcessFiles concurrently processes all configured files. It returns the
// number of successfully processed files, the number of errors, and the
// total output size in bytes.
func (p *Processor) ProcessFiles(ctx context.Context) (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Err != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Err)

				continue
			}

			processed++
			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := p.fs.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath, size, err := p.processFile(ctx, file)
			if err != nil {
				p.results <- Result{Input: file, Err: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile transforms a single file and writes the output atomically next
// to the input. It returns the output path and size.
func (p *Processor) processFile(ctx context.Context, filename string) (string, int64, error) {
	in, err := p.fs.Open(filename)
	if err != nil {
		return "", 0, fmt.Errorf("opening input file: %w", err)
	}

	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return "", 0, fmt.Errorf("reading input file: %w", err)
	}

	var (
		outPath string
		output  []byte
	)

	if p.cfg.Decrypt {
		plain, meta, err := p.cipher.Decrypt(ctx, data, p.password, p.reporter(filename))
		if err != nil {
			return "", 0, fmt.Errorf("decrypting file: %w", err)
		}

		// The restored metadata decides the output filename. Base keeps a
		// foreign container from writing outside the input's directory.
		outPath = filepath.Join(filepath.Dir(filename), filepath.Base(meta.Name))
		output = plain
	} else {
		meta := sealfile.Metadata{
			Name: filepath.Base(filename),
			Type: mimetype.Detect(data).String(),
		}

		sealed, err := p.cipher.Encrypt(ctx, data, meta, p.password, p.reporter(filename))
		if err != nil {
			return "", 0, fmt.Errorf("encrypting file: %w", err)
		}

		outPath = p.encryptedPath(filename)
		output = sealed
	}

	if err := p.writeAtomic(outPath, output); err != nil {
		return "", 0, err
	}

	return outPath, int64(len(output)), nil
}

// encryptedPath appends the configured suffix to the input filename.
func (p *Processor) encryptedPath(filename string) string {
	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+p.cfg.Suffix)
}

// writeAtomic writes data to a uniquely named temporary file in the target
// directory, then renames it into place. The temporary file is removed on
// any failure.
func (p *Processor) writeAtomic(outPath string, data []byte) (err error) {
	tmpName := filepath.Join(filepath.Dir(outPath),
		"."+filepath.Base(outPath)+"."+uuid.NewString()+".tmp")

	const ownerReadWrite = 0o600

	tmp, err := p.fs.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, ownerReadWrite)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			p.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err = p.fs.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// reporter returns a per-file progress reporter, or nil when progress output
// is disabled.
func (p *Processor) reporter(filename string) sealfile.ProgressReporter {
	if !p.cfg.Progress || p.cfg.Quiet {
		return nil
	}

	name := filepath.Base(strings.TrimSuffix(filename, p.cfg.Suffix))

	return sealfile.ProgressFunc(func(percent int) {
		fmt.Fprintf(os.Stderr, "%s: %d%%\n", name, percent)
	})
}
