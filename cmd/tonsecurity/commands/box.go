package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"tonsecurity/internal/crypto"
	"tonsecurity/internal/util/memzero"
)

type boxFlags struct {
	keyFile        string
	passphraseFile string
	in             string
}

func (b *boxFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&b.keyFile, "key", "k", "", "own key file (default <home>/keypair.json)")
	f.StringVar(&b.passphraseFile, "passphrase-file", "", "read the key file passphrase from this file")
	f.StringVarP(&b.in, "in", "i", "", "input file (default stdin)")
}

// seal --to <pub>: encrypt stdin or --in for a peer and print base64.
func sealCmd() *cobra.Command {
	var (
		bf boxFlags
		to string
	)
	cmd := &cobra.Command{
		Use:   "seal --to <public-key>",
		Short: "Encrypt a message for a peer public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := decodeKey("--to", to)
			if err != nil {
				return err
			}
			kp, err := loadKeyPair(cmd, bf.keyFile, bf.passphraseFile)
			if err != nil {
				return err
			}
			defer memzero.Zero(kp.Secret[:])

			msg, err := readInput(cmd, bf.in)
			if err != nil {
				return err
			}
			defer memzero.Zero(msg)

			r := appCtx.Engine.SealMessage(msg, peer, kp.Secret[:])
			if err := resultErr("seal", r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(r.Bytes()))
			return nil
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "recipient public key, base64")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// open --from <pub>: decrypt base64 from stdin or --in sent by a peer.
func openCmd() *cobra.Command {
	var (
		bf   boxFlags
		from string
	)
	cmd := &cobra.Command{
		Use:   "open --from <public-key>",
		Short: "Decrypt a message from a peer public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := decodeKey("--from", from)
			if err != nil {
				return err
			}
			kp, err := loadKeyPair(cmd, bf.keyFile, bf.passphraseFile)
			if err != nil {
				return err
			}
			defer memzero.Zero(kp.Secret[:])

			in, err := readInput(cmd, bf.in)
			if err != nil {
				return err
			}
			sealed, err := crypto.FromB64(string(bytes.TrimSpace(in)))
			if err != nil {
				return fmt.Errorf("sealed message: %w", err)
			}

			r := appCtx.Engine.OpenMessage(sealed, peer, kp.Secret[:])
			if err := resultErr("open", r); err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(r.Bytes())
			return err
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "sender public key, base64")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
