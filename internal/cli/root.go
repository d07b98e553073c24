// Package cli implements btf-cli, an offline tool for the bot's config file
// and command reference.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/btf-bot/internal/logging"
)

type options struct {
	cfgFile  string
	logLevel string
	log      *logging.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "btf-cli",
		Short: "Inspect and initialise the bot's config",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = logging.New(nil, opts.logLevel)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "conf.toml", "config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newCanCmd(opts))
	cmd.AddCommand(newDocsCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}
	return err
}
