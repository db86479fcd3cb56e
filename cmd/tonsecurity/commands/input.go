package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tonsecurity"
	"tonsecurity/internal/crypto"
)

// readSecret returns the secret stored in file, or prompts for it. A terminal
// stdin is read without echo; otherwise one line is read from stdin and the
// rest is left unread.
func readSecret(cmd *cobra.Command, file, prompt string) ([]byte, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return bytes.TrimRight(b, "\r\n"), nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return b, err
	}

	return readLine(cmd.InOrStdin())
}

// readLine reads up to and including the next '\n' one byte at a time, so
// whatever follows the line stays in r for the message.
func readLine(r io.Reader) ([]byte, error) {
	var (
		line []byte
		b    [1]byte
	)
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			line = append(line, b[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimRight(line, "\r"), nil
}

// readInput returns the contents of path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// decodeKey parses a base64 public or secret key and checks its length.
func decodeKey(name, s string) ([]byte, error) {
	b, err := crypto.FromB64(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(b) != tonsecurity.PublicKeySize {
		return nil, fmt.Errorf("%s: want %d bytes, got %d", name, tonsecurity.PublicKeySize, len(b))
	}
	return b, nil
}

// resultErr turns a failed boundary Result into a CLI error.
func resultErr(what string, r tonsecurity.Result) error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s failed: %s", what, r.Kind())
}
