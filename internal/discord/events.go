package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("Discord bot is running")
}

// onMessageCreate dispatches every message not written by the bot itself.
func (b *Bot) onMessageCreate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if isSelf(s, m.Message) {
		return
	}
	b.dispatcher.HandleMessage(ctx, s, m.Message)
}

// onGuildMemberAdd gives new members the configured member role.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	b.dispatcher.HandleJoin(s, m.Member)
}

func isSelf(s *discordgo.Session, m *discordgo.Message) bool {
	if m == nil || m.Author == nil || s == nil || s.State == nil || s.State.User == nil {
		return false
	}
	return m.Author.ID == s.State.User.ID
}
