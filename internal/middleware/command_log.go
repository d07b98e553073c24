// Package middleware holds cmd.Middleware implementations shared by the
// bot's commands.
package middleware

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/logging"
	"github.com/keshon/btf-bot/pkg/cmd"
)

// WithCommandLogger wraps a command to log each execution at debug level.
// This is operator tracing; the dispatcher's own reply/log behaviour per
// outcome is unchanged, and at the default info level nothing is written.
func WithCommandLogger(log *logging.Logger) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Invoke(ctx, inv)

			ev := log.Debug().
				Str("label", c.Label).
				Str("channel", inv.ChannelID).
				Str("outcome", cmd.Classify(err).Kind.String()).
				Dur("took", time.Since(start))
			if m, ok := inv.Data.(*discordgo.Message); ok && m.Author != nil {
				ev = ev.Str("user", m.Author.ID).Str("username", m.Author.Username)
			}
			ev.Msg("Command executed")
			return err
		})
	}
}
