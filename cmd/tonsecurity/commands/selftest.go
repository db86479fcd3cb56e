package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tonsecurity"
	"tonsecurity/internal/util/memzero"
)

func selftestCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the startup checks and a fresh-keypair round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Known-answer tests already ran while the app context was built.
			a := appCtx.Engine.GenerateKeyPair()
			b := appCtx.Engine.GenerateKeyPair()
			if err := resultErr("keygen", a); err != nil {
				return err
			}
			if err := resultErr("keygen", b); err != nil {
				return err
			}
			ka, kb := a.Bytes(), b.Bytes()
			defer memzero.ZeroAll(ka, kb)

			r := appCtx.Engine.SelfTest([]byte(message),
				ka[:tonsecurity.PublicKeySize], ka[tonsecurity.PublicKeySize:],
				kb[:tonsecurity.PublicKeySize], kb[tonsecurity.PublicKeySize:])
			if err := resultErr("self-test", r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s v%#x, box round trip\n",
				tonsecurity.Algorithm, tonsecurity.Argon2Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "tonsecurity self-test", "message to round trip")
	return cmd
}
