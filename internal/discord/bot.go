package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/boterr"
	"github.com/keshon/btf-bot/internal/dispatch"
	"github.com/keshon/btf-bot/internal/logging"
)

// Bot is a Discord bot
type Bot struct {
	dg         *discordgo.Session
	dispatcher *dispatch.Dispatcher
	log        *logging.Logger
}

// NewBot returns a bot that routes gateway events to d.
func NewBot(d *dispatch.Dispatcher, log *logging.Logger) *Bot {
	return &Bot{dispatcher: d, log: log}
}

// Run connects to Discord and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return boterr.Remote("create session", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.onMessageCreate(ctx, s, m)
	})
	dg.AddHandler(b.onGuildMemberAdd)

	if err := dg.Open(); err != nil {
		return boterr.Remote("open session", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("Shutdown signal received, closing session")
	return nil
}

// configureIntents asks for guild messages with content and member joins.
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent
}
