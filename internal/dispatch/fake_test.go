package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/logging"
	"github.com/keshon/btf-bot/pkg/cmd"
)

type sentMessage struct {
	ChannelID string
	Content   string
}

type roleGrant struct {
	GuildID, UserID, RoleID string
}

// fakePlatform records every call made to it.
type fakePlatform struct {
	sent    []sentMessage
	grants  []roleGrant
	sendErr error
	roleErr error
}

func (f *fakePlatform) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, sentMessage{ChannelID: channelID, Content: content})
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakePlatform) GuildMemberRoleAdd(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	f.grants = append(f.grants, roleGrant{guildID, userID, roleID})
	return f.roleErr
}

var errPlatform = errors.New("HTTP 403 Forbidden")

const (
	pingerRole = "111"
	helperRole = "222"
	channelID  = "900"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.MemberRole = 555
	cfg.Permissions = map[string][]string{
		pingerRole: {"bot.ping"},
		helperRole: {"bot.help", "bot.admin"},
	}
	return cfg
}

// newTestDispatcher returns a dispatcher logging JSON at debug level into buf.
func newTestDispatcher(t *testing.T, commands ...cmd.Command) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(testConfig(), cmd.NewRegistry(commands...), logging.New(&buf, "debug")), &buf
}

func guildMessage(content string, roles ...string) *discordgo.Message {
	return &discordgo.Message{
		Content:   content,
		ChannelID: channelID,
		GuildID:   "42",
		Author:    &discordgo.User{ID: "7"},
		Member:    &discordgo.Member{Roles: roles},
	}
}

// counter returns a handler that counts calls and returns err.
func counter(calls *int, err error) cmd.Handler {
	return func(ctx context.Context, inv *cmd.Invocation) error {
		*calls++
		return err
	}
}
