package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tonsecurity/internal/crypto"
	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

const defaultKeyFile = "keypair.json"

func keygenCmd() *cobra.Command {
	var (
		out            string
		protect        bool
		passphraseFile string
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a box keypair and write it to a key file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = appCtx.Path(defaultKeyFile)
			}
			if _, err := os.Stat(out); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to replace it)", out)
			}

			var passphrase string
			if protect || passphraseFile != "" {
				b, err := readSecret(cmd, passphraseFile, "Passphrase: ")
				if err != nil {
					return err
				}
				if len(b) == 0 {
					return errors.New("empty passphrase")
				}
				passphrase = string(b)
				memzero.Zero(b)
			}

			r := appCtx.Engine.GenerateKeyPair()
			if err := resultErr("keygen", r); err != nil {
				return err
			}
			combined := r.Bytes()
			defer memzero.Zero(combined)
			kp, err := domain.SplitKeyPair(combined)
			if err != nil {
				return err
			}
			defer memzero.Zero(kp.Secret[:])

			if err := appCtx.KeyPairs.SaveKeyPair(out, passphrase, kp); err != nil {
				return err
			}
			appCtx.Log.Info().
				Str("path", out).
				Bool("protected", passphrase != "").
				Str("fingerprint", crypto.Fingerprint(kp.Public[:]).String()).
				Msg("keypair written")

			fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\nFingerprint: %s\n",
				crypto.B64(kp.Public[:]), crypto.Fingerprint(kp.Public[:]))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "key file (default <home>/keypair.json)")
	f.BoolVar(&protect, "protect", false, "seal the secret key under a passphrase")
	f.StringVar(&passphraseFile, "passphrase-file", "", "read the passphrase from this file (implies --protect)")
	f.BoolVar(&force, "force", false, "overwrite an existing key file")
	return cmd
}

// loadKeyPair reads the key file at path, asking for the passphrase only when
// the file is protected. The public key is checked against the secret.
func loadKeyPair(cmd *cobra.Command, path, passphraseFile string) (domain.KeyPair, error) {
	if path == "" {
		path = appCtx.Path(defaultKeyFile)
	}
	protected, err := appCtx.KeyPairs.Protected(path)
	if err != nil {
		return domain.KeyPair{}, err
	}

	var passphrase string
	if protected {
		b, err := readSecret(cmd, passphraseFile, "Passphrase: ")
		if err != nil {
			return domain.KeyPair{}, err
		}
		passphrase = string(b)
		memzero.Zero(b)
	}

	kp, err := appCtx.KeyPairs.LoadKeyPair(path, passphrase)
	if err != nil {
		return domain.KeyPair{}, err
	}
	derived, err := appCtx.Box.KeyPairFromSecret(kp.Secret[:])
	if err != nil {
		return domain.KeyPair{}, err
	}
	if derived.Public != kp.Public {
		memzero.Zero(kp.Secret[:])
		return domain.KeyPair{}, fmt.Errorf("%s: public key does not match secret key", path)
	}
	return kp, nil
}
