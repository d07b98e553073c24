package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/dispatch"
	"github.com/keshon/btf-bot/internal/logging"
	"github.com/keshon/btf-bot/pkg/cmd"
)

func testSession(botID string) *discordgo.Session {
	s := &discordgo.Session{State: discordgo.NewState()}
	s.State.User = &discordgo.User{ID: botID}
	return s
}

func testBot(calls *int) *Bot {
	cfg := config.Default()
	cfg.Permissions = map[string][]string{"1": {"btf.ping"}}
	registry := cmd.NewRegistry(cmd.Command{
		Label:      "ping",
		Permission: "btf.ping",
		Run: func(ctx context.Context, inv *cmd.Invocation) error {
			*calls++
			return nil
		},
	})
	return NewBot(dispatch.New(cfg, registry, logging.Nop()), logging.Nop())
}

func createEvent(authorID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		Content: "!ping",
		Author:  &discordgo.User{ID: authorID},
		Member:  &discordgo.Member{Roles: []string{"1"}},
	}}
}

func TestOnMessageCreateDispatches(t *testing.T) {
	var calls int
	b := testBot(&calls)

	b.onMessageCreate(context.Background(), testSession("bot"), createEvent("user"))
	assert.Equal(t, 1, calls)
}

func TestOnMessageCreateSkipsSelf(t *testing.T) {
	var calls int
	b := testBot(&calls)

	b.onMessageCreate(context.Background(), testSession("bot"), createEvent("bot"))
	assert.Zero(t, calls)
}

func TestIsSelf(t *testing.T) {
	s := testSession("bot")
	assert.True(t, isSelf(s, &discordgo.Message{Author: &discordgo.User{ID: "bot"}}))
	assert.False(t, isSelf(s, &discordgo.Message{Author: &discordgo.User{ID: "u"}}))
	assert.False(t, isSelf(s, &discordgo.Message{}))
	assert.False(t, isSelf(&discordgo.Session{}, &discordgo.Message{Author: &discordgo.User{ID: "bot"}}))
}
