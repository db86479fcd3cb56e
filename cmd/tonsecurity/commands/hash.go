package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"tonsecurity"
	"tonsecurity/internal/crypto"
	"tonsecurity/internal/util/memzero"
)

func hashCmd() *cobra.Command {
	var (
		saltB64      string
		passwordFile string
		timeCost     int
		memoryCost   int
		parallelism  int
		hashLen      int
		asHex        bool
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Derive an Argon2id key from a password",
		Long: "Derive an Argon2id key from a password. Without --salt a fresh " +
			"16-byte salt is drawn and printed alongside the key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var salt []byte
			if saltB64 != "" {
				b, err := crypto.FromB64(saltB64)
				if err != nil {
					return fmt.Errorf("salt: %w", err)
				}
				salt = b
			} else {
				salt = make([]byte, tonsecurity.MinSaltSize)
				if _, err := rand.Read(salt); err != nil {
					return err
				}
			}

			pw, err := readSecret(cmd, passwordFile, "Password: ")
			if err != nil {
				return err
			}
			defer memzero.Zero(pw)

			r := appCtx.Engine.HashPassword(pw, salt, timeCost, memoryCost, parallelism, hashLen)
			if err := resultErr("hash", r); err != nil {
				return err
			}
			key := r.Bytes()
			defer memzero.Zero(key)

			out := cmd.OutOrStdout()
			if saltB64 == "" {
				fmt.Fprintf(out, "salt: %s\n", crypto.B64(salt))
			}
			if asHex {
				fmt.Fprintf(out, "key:  %s\n", hex.EncodeToString(key))
			} else {
				fmt.Fprintf(out, "key:  %s\n", crypto.B64(key))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&saltB64, "salt", "", "salt, base64 (at least 16 bytes)")
	f.StringVar(&passwordFile, "password-file", "", "read the password from this file instead of prompting")
	f.IntVarP(&timeCost, "time", "t", 3, "Argon2 passes")
	f.IntVarP(&memoryCost, "memory", "m", 64<<10, "Argon2 memory in KiB")
	f.IntVarP(&parallelism, "parallelism", "p", 1, "Argon2 lanes")
	f.IntVarP(&hashLen, "length", "l", 32, "output length in bytes")
	f.BoolVar(&asHex, "hex", false, "print the key as hex instead of base64")
	return cmd
}
