// Package permissions answers whether a guild member holds a permission
// string, based on the role grants in the bot config.
package permissions

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/btf-bot/internal/config"
)

// Checker evaluates permissions against a loaded config. The config is only
// read, so a Checker is safe for concurrent use.
type Checker struct {
	cfg *config.Config
}

// New returns a Checker backed by cfg.
func New(cfg *config.Config) *Checker {
	return &Checker{cfg: cfg}
}

// RolesHave reports whether any of the role IDs is granted perm.
func (c *Checker) RolesHave(roles []string, perm string) bool {
	for _, role := range roles {
		if granted, ok := c.cfg.Permissions[role]; ok && slices.Contains(granted, perm) {
			return true
		}
	}
	return false
}

// UserHasPermission reports whether member holds perm through any of its
// roles. A nil member has no permissions.
func (c *Checker) UserHasPermission(member *discordgo.Member, perm string) bool {
	if member == nil {
		return false
	}
	return c.RolesHave(member.Roles, perm)
}
