package dispatch

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/boterr"
	"github.com/keshon/btf-bot/internal/config"
)

// HandleJoin grants the configured member role to a member who just joined.
// A failure is logged and not retried.
func (d *Dispatcher) HandleJoin(p Platform, m *discordgo.Member) {
	if m == nil || m.User == nil {
		return
	}
	roleID := config.ID(d.cfg.MemberRole)
	if err := p.GuildMemberRoleAdd(m.GuildID, m.User.ID, roleID); err != nil {
		d.log.Error().
			Err(boterr.Remote("add member role", err)).
			Str("guild", m.GuildID).
			Str("user", m.User.ID).
			Msg("Failed to assign member role to new member")
	}
}
