// Package commands holds the bot's built-in chat commands.
package commands

import "github.com/keshon/btf-bot/pkg/cmd"

// Builtin returns the built-in commands in listing order.
func Builtin() []cmd.Command {
	return []cmd.Command{
		Ping(),
		Help(),
	}
}

// Register adds every built-in command to r, wrapped with mws.
func Register(r *cmd.Registry, mws ...cmd.Middleware) {
	for _, c := range Builtin() {
		r.Register(cmd.Apply(c, mws...))
	}
}
