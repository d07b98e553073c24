package dispatch

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleJoinGrantsMemberRole(t *testing.T) {
	d, logs := newTestDispatcher(t)
	p := &fakePlatform{}

	d.HandleJoin(p, &discordgo.Member{GuildID: "42", User: &discordgo.User{ID: "7"}})

	require.Len(t, p.grants, 1)
	assert.Equal(t, roleGrant{GuildID: "42", UserID: "7", RoleID: "555"}, p.grants[0])
	assert.Empty(t, logs.String())
}

func TestHandleJoinFailureLogged(t *testing.T) {
	d, logs := newTestDispatcher(t)
	p := &fakePlatform{roleErr: errPlatform}

	d.HandleJoin(p, &discordgo.Member{GuildID: "42", User: &discordgo.User{ID: "7"}})

	assert.Len(t, p.grants, 1, "no retry")
	assert.Contains(t, logs.String(), "Failed to assign member role")
	assert.Contains(t, logs.String(), `"user":"7"`)
}

func TestHandleJoinWithoutUser(t *testing.T) {
	d, _ := newTestDispatcher(t)
	p := &fakePlatform{}

	d.HandleJoin(p, &discordgo.Member{GuildID: "42"})
	d.HandleJoin(p, nil)

	assert.Empty(t, p.grants)
}
