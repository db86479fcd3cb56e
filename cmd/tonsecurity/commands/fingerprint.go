package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tonsecurity/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	var keyFile string
	cmd := &cobra.Command{
		Use:   "fingerprint [public-key]",
		Short: "Print the fingerprint of a public key or of the local key file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub []byte
			if len(args) == 1 {
				b, err := decodeKey("public key", args[0])
				if err != nil {
					return err
				}
				pub = b
			} else {
				if keyFile == "" {
					keyFile = appCtx.Path(defaultKeyFile)
				}
				// The public half is readable without the passphrase.
				p, err := appCtx.KeyPairs.PublicKey(keyFile)
				if err != nil {
					return err
				}
				pub = p[:]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(pub))
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyFile, "key", "k", "", "key file (default <home>/keypair.json)")
	return cmd
}
