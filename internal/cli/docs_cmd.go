package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/btf-bot/internal/commands"
	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/docs"
)

func newDocsCmd(opts *options) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print a markdown reference of the built-in commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prefix") {
				if cfg, err := config.Load(opts.cfgFile); err == nil {
					prefix = cfg.CmdPrefix
				}
			}
			return docs.WriteCommandReference(cmd.OutOrStdout(), commands.Builtin(), prefix)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", config.Default().CmdPrefix, "command prefix shown in the reference")
	return cmd
}
