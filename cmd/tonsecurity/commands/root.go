package commands

import (
	"github.com/spf13/cobra"

	"tonsecurity/internal/app"
)

var (
	home      string
	envFile   string
	logLevel  string
	logFormat string
	maxMemory uint32

	appCtx *app.App
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tonsecurity",
		Short:         "Wallet password hashing and authenticated box tool",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("max-memory") {
				cfg.MaxMemoryKiB = maxMemory
			}
			cfg.LogOutput = cmd.ErrOrStderr()

			appCtx, err = app.New(cfg)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "data dir (default ~/.tonsecurity)")
	pf.StringVar(&envFile, "env-file", "", "load environment variables from this .env file")
	pf.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	pf.StringVar(&logFormat, "log-format", "", "log format: console or json")
	pf.Uint32Var(&maxMemory, "max-memory", 0, "Argon2 memory budget in KiB (0 = default)")

	root.AddCommand(
		hashCmd(),
		keygenCmd(),
		sealCmd(),
		openCmd(),
		selftestCmd(),
		passcodeCmd(),
		fingerprintCmd(),
	)
	return root
}
