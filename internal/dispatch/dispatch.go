// Package dispatch turns inbound guild messages into command invocations and
// handles member joins.
package dispatch

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/boterr"
	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/logging"
	"github.com/keshon/btf-bot/internal/permissions"
	"github.com/keshon/btf-bot/pkg/cmd"
)

// Platform is the part of the Discord API the dispatcher calls.
// *discordgo.Session satisfies it.
type Platform interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// Dispatcher matches messages against the command registry. Its config and
// registry are read only, so one Dispatcher may serve concurrent events.
type Dispatcher struct {
	cfg      *config.Config
	perms    *permissions.Checker
	commands *cmd.Registry
	log      *logging.Logger
}

// New returns a Dispatcher for the given config and commands.
func New(cfg *config.Config, commands *cmd.Registry, log *logging.Logger) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		perms:    permissions.New(cfg),
		commands: commands,
		log:      log,
	}
}

// HandleMessage runs every command whose label matches the message and whose
// permission the sender holds. Messages without the prefix, and messages not
// sent by a guild member, are ignored.
func (d *Dispatcher) HandleMessage(ctx context.Context, p Platform, m *discordgo.Message) {
	if m == nil {
		return
	}
	label, args, ok := cmd.Parse(m.Content, d.cfg.CmdPrefix)
	if !ok {
		return
	}
	sender := m.Member
	if sender == nil {
		return
	}

	// all permitted matches run, not just the first
	for _, c := range d.commands.Match(label) {
		if !d.perms.UserHasPermission(sender, c.Permission) {
			continue
		}
		d.exec(ctx, p, c, m, args)
	}
}

func (d *Dispatcher) exec(ctx context.Context, p Platform, c cmd.Command, m *discordgo.Message, args []string) {
	inv := &cmd.Invocation{
		Label:     c.Label,
		Args:      args,
		ChannelID: m.ChannelID,
		Data:      m,
		Reply: func(content string) error {
			return reply(p, m.ChannelID, content)
		},
		Allowed: func(permission string) bool {
			return d.perms.UserHasPermission(m.Member, permission)
		},
		Commands: d.commands,
	}

	outcome := cmd.Classify(c.Invoke(ctx, inv))
	switch outcome.Kind {
	case cmd.Success:
	case cmd.SyntaxError:
		d.replyOrLog(p, c.Label, m.ChannelID, c.Help)
	case cmd.InvalidArgumentError:
		d.replyOrLog(p, c.Label, m.ChannelID, outcome.Explanation)
	case cmd.Failure:
		d.log.Error().Err(outcome.Err).Str("label", c.Label).Msg("Command failed")
	}
}

// replyOrLog sends text once; a failure is only logged.
func (d *Dispatcher) replyOrLog(p Platform, label, channelID, text string) {
	if err := reply(p, channelID, text); err != nil {
		d.log.Warn().Err(err).Str("label", label).Msg("Failed to reply to command")
	}
}

func reply(p Platform, channelID, content string) error {
	if _, err := p.ChannelMessageSend(channelID, content); err != nil {
		return boterr.Remote("send message", err)
	}
	return nil
}
