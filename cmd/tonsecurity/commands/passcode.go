package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

const defaultVerifierFile = "passcode.json"

// errPasscodeMismatch makes `passcode check` exit non-zero on a wrong passcode.
var errPasscodeMismatch = errors.New("passcode does not match")

func passcodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcode",
		Short: "Create and check wallet passcode verifiers",
	}
	cmd.AddCommand(passcodeNewCmd(), passcodeCheckCmd())
	return cmd
}

func passcodeNewCmd() *cobra.Command {
	var (
		out          string
		kind         string
		passcodeFile string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a passcode verifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pt domain.PasscodeType
			switch kind {
			case "pin4":
				pt = domain.Pin4
			case "pin6":
				pt = domain.Pin6
			default:
				return fmt.Errorf("unknown passcode type %q (want pin4 or pin6)", kind)
			}
			if out == "" {
				out = appCtx.Path(defaultVerifierFile)
			}

			code, err := readSecret(cmd, passcodeFile, "Passcode: ")
			if err != nil {
				return err
			}
			defer memzero.Zero(code)

			v, err := appCtx.Passcodes.Create(string(code), pt)
			if err != nil {
				return err
			}
			if err := appCtx.Verifiers.SaveVerifier(out, v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Verifier written to %s\n", out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "verifier file (default <home>/passcode.json)")
	f.StringVar(&kind, "type", "pin4", "passcode type: pin4 or pin6")
	f.StringVar(&passcodeFile, "passcode-file", "", "read the passcode from this file instead of prompting")
	return cmd
}

func passcodeCheckCmd() *cobra.Command {
	var (
		in           string
		passcodeFile string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a passcode against a stored verifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				in = appCtx.Path(defaultVerifierFile)
			}
			v, err := appCtx.Verifiers.LoadVerifier(in)
			if err != nil {
				return err
			}

			code, err := readSecret(cmd, passcodeFile, "Passcode: ")
			if err != nil {
				return err
			}
			defer memzero.Zero(code)

			ok, err := appCtx.Passcodes.Check(string(code), v)
			if err != nil {
				return err
			}
			if !ok {
				return errPasscodeMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "passcode ok")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in, "in", "i", "", "verifier file (default <home>/passcode.json)")
	f.StringVar(&passcodeFile, "passcode-file", "", "read the passcode from this file instead of prompting")
	return cmd
}
