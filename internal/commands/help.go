package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/btf-bot/pkg/cmd"
)

// PermHelp is required to run help.
const PermHelp = "btf.help"

// Help lists the commands the invoker may run, or shows one command's help
// text.
func Help() cmd.Command {
	return cmd.Command{
		Label:       "help",
		Description: "Lists commands, or explains one.",
		Help:        "Syntax: `help [command]`",
		Permission:  PermHelp,
		Run:         runHelp,
	}
}

func runHelp(ctx context.Context, inv *cmd.Invocation) error {
	if inv.Commands == nil {
		return errors.New("help: no command registry")
	}
	switch len(inv.Args) {
	case 0:
		return inv.Reply(buildHelpList(inv))
	case 1:
		c, ok := inv.Commands.Get(inv.Args[0])
		if !ok {
			return cmd.InvalidArgument(fmt.Sprintf("No command named `%s`.", inv.Args[0]))
		}
		return inv.Reply(fmt.Sprintf("`%s` - %s\n%s", c.Label, c.Description, c.Help))
	default:
		return cmd.ErrSyntax
	}
}

func buildHelpList(inv *cmd.Invocation) string {
	var sb strings.Builder
	sb.WriteString("**Commands**\n")

	seen := make(map[string]bool)
	for _, c := range inv.Commands.All() {
		if seen[c.Label] {
			continue
		}
		if inv.Allowed != nil && !inv.Allowed(c.Permission) {
			continue
		}
		seen[c.Label] = true
		sb.WriteString(fmt.Sprintf("`%s` - %s\n", c.Label, c.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}
