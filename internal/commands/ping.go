package commands

import (
	"context"

	"github.com/keshon/btf-bot/pkg/cmd"
)

// PermPing is required to run ping.
const PermPing = "btf.ping"

// Ping replies "pong".
func Ping() cmd.Command {
	return cmd.Command{
		Label:       "ping",
		Description: "Replies with pong.",
		Help:        "Syntax: `ping`",
		Permission:  PermPing,
		Run:         runPing,
	}
}

func runPing(ctx context.Context, inv *cmd.Invocation) error {
	if len(inv.Args) > 0 {
		return cmd.ErrSyntax
	}
	return inv.Reply("pong")
}
