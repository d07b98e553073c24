package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keshon/btf-bot/internal/boterr"
	"github.com/keshon/btf-bot/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check the config file",
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigCheckCmd(opts))

	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Load(opts.cfgFile)
			switch {
			case err == nil:
				return boterr.IO("init config", fmt.Errorf("%s already exists: %w", opts.cfgFile, fs.ErrExist))
			case boterr.Is(err, boterr.KindIO) && errors.Is(err, fs.ErrNotExist):
			default:
				return err
			}

			if err := config.Default().Save(opts.cfgFile); err != nil {
				return err
			}
			opts.log.Info().Str("path", opts.cfgFile).Msg("Default config written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", opts.cfgFile)
			return nil
		},
	}
}

func newConfigCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the config and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary(cfg))
			return nil
		},
	}
}

func summary(cfg *config.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "prefix:           %q\n", cfg.CmdPrefix)
	fmt.Fprintf(&sb, "member role:      %d\n", cfg.MemberRole)
	fmt.Fprintf(&sb, "casual role:      %d\n", cfg.CasualRole)
	fmt.Fprintf(&sb, "comp role:        %d\n", cfg.CompRole)
	fmt.Fprintf(&sb, "vote minutes:     %d\n", cfg.VoteMinutes)
	fmt.Fprintf(&sb, "announce channel: %d\n", cfg.ChannelAnnounce)
	fmt.Fprintf(&sb, "vote channel:     %d\n", cfg.ChannelVote)

	roles := make([]string, 0, len(cfg.Permissions))
	for role := range cfg.Permissions {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	fmt.Fprintf(&sb, "permissions:      %d role(s)\n", len(roles))
	for _, role := range roles {
		fmt.Fprintf(&sb, "  %s: %s\n", role, strings.Join(cfg.Permissions[role], ", "))
	}
	return sb.String()
}
