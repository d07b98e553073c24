// Package cmd provides the transport-agnostic command core: a command is a
// label plus a handler, gated by a permission string. How messages reach it
// (Discord, CLI) is up to the adapter that owns the Registry.
package cmd

import "context"

// Invocation carries what a handler gets for one message. Adapters set Data
// to their native message (e.g. *discordgo.Message).
type Invocation struct {
	Label string
	Args  []string
	// ChannelID is where Reply sends to.
	ChannelID string
	Data      any

	// Reply sends text back to the channel the message came from.
	Reply func(content string) error
	// Allowed reports whether the invoker holds a permission.
	Allowed func(permission string) bool
	// Commands is the registry the command was dispatched from. Read only.
	Commands *Registry
}

// Handler runs a command. The returned error decides what the invoker sees;
// see Classify.
type Handler func(ctx context.Context, inv *Invocation) error

// Command describes a chat command. Commands are built once at startup and
// never changed afterwards.
type Command struct {
	// Label is what users type after the prefix, matched case-sensitively.
	Label string
	// Description is a short summary shown in command listings.
	Description string
	// Help is shown to the invoker when the handler reports ErrSyntax.
	Help string
	// Permission is the permission string required to run the command.
	Permission string
	Run        Handler
}

// Invoke runs the command's handler. A command without a handler succeeds.
func (c Command) Invoke(ctx context.Context, inv *Invocation) error {
	if c.Run == nil {
		return nil
	}
	return c.Run(ctx, inv)
}
