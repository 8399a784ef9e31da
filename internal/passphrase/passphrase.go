// Package passphrase acquires the encryption passphrase from the environment
// or an interactive no-echo terminal prompt.
package passphrase

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

// EnvVar overrides interactive prompting when set.
const EnvVar = "SEALFILE_PASSPHRASE"

// Zero overwrites a byte slice with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Get returns the passphrase from EnvVar if set, otherwise prompts on the
// terminal without echo.
func Get(prompt string) ([]byte, error) {
	if env := os.Getenv(EnvVar); env != "" {
		return []byte(env), nil
	}
	return readPassword(prompt)
}

// GetWithConfirm is Get plus a confirmation prompt; the two entries must
// match. Used on encryption, where a typo would lock the file forever.
func GetWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	if env := os.Getenv(EnvVar); env != "" {
		return []byte(env), nil
	}

	pass, err := readPassword(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := readPassword(confirmPrompt)
	if err != nil {
		Zero(pass)
		return nil, err
	}

	if !bytes.Equal(pass, confirm) {
		Zero(pass)
		Zero(confirm)
		return nil, fmt.Errorf("passphrases do not match")
	}

	Zero(confirm)
	return pass, nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		pass, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		return pass, err
	}

	// STDIN is piped; fall back to the controlling terminal.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot read passphrase: STDIN is piped and /dev/tty is not available; set %s", EnvVar)
	}
	defer tty.Close()

	pass, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return pass, err
}
