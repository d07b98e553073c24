package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/permissions"
)

func newCanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "can <permission> <role-id>...",
		Short: "Check whether holders of the given roles have a permission",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			perm, roles := args[0], args[1:]
			if permissions.New(cfg).RolesHave(roles, perm) {
				fmt.Fprintln(cmd.OutOrStdout(), "yes")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no")
			}
			return nil
		},
	}
}
