// Package config holds the bot's persisted TOML settings and the process
// environment it is started with.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/keshon/btf-bot/internal/boterr"
	"github.com/keshon/btf-bot/internal/logging"
)

// Config is the set of options that can be changed for the bot.
type Config struct {
	// CmdPrefix is prepended to every command label, "!" by default.
	CmdPrefix string `toml:"cmd_prefix"`
	// MemberRole is granted to every member who joins the guild.
	MemberRole uint64 `toml:"member_role"`
	CasualRole uint64 `toml:"casual_role"`
	CompRole   uint64 `toml:"comp_role"`
	// VoteMinutes is how long a new vote stays open.
	VoteMinutes     uint64 `toml:"vote_minutes"`
	ChannelAnnounce uint64 `toml:"channel_announce"`
	ChannelVote     uint64 `toml:"channel_vote"`
	// Permissions maps a role ID to the permission strings its holders get.
	Permissions map[string][]string `toml:"permissions"`
}

// requiredKeys must all be present in a config document. Missing keys are
// never filled from Default.
var requiredKeys = []string{
	"cmd_prefix",
	"member_role",
	"casual_role",
	"comp_role",
	"vote_minutes",
	"channel_announce",
	"channel_vote",
	"permissions",
}

// Default returns the configuration written when no config file exists.
func Default() *Config {
	return &Config{
		CmdPrefix:   "!",
		VoteMinutes: 1440,
		Permissions: map[string][]string{},
	}
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, boterr.IO("open config", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, boterr.IO("read config", err)
	}
	if !utf8.Valid(data) {
		return nil, boterr.IO("read config", errors.New("file is not valid UTF-8"))
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, boterr.Deserialize("decode config", err)
	}
	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return nil, boterr.Deserialize("decode config", fmt.Errorf("missing required key %q", key))
		}
	}
	if cfg.Permissions == nil {
		cfg.Permissions = map[string][]string{}
	}
	return &cfg, nil
}

// Save writes c to path, replacing any existing content.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c.normalized()); err != nil {
		return boterr.Serialize("encode config", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return boterr.IO("open config", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return boterr.IO("write config", err)
	}
	if err := f.Close(); err != nil {
		return boterr.IO("write config", err)
	}
	return nil
}

// normalized returns a copy whose permission table and grant lists are
// non-nil, since the encoder drops nil values and Load would then reject
// the file.
func (c *Config) normalized() Config {
	out := *c
	out.Permissions = make(map[string][]string, len(c.Permissions))
	for role, perms := range c.Permissions {
		if perms == nil {
			perms = []string{}
		}
		out.Permissions[role] = perms
	}
	return out
}

// LoadOrInit loads the config at path. If the file does not exist the
// default config is written there and returned. Any other load failure is
// returned and must stop startup.
func LoadOrInit(path string, log *logging.Logger) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !boterr.Is(err, boterr.KindIO) || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	log.Info().Str("path", path).Msg("No config file found, creating default")
	cfg = Default()
	if err := cfg.Save(path); err != nil {
		if boterr.Is(err, boterr.KindSerialize) {
			return nil, err
		}
		log.Warn().Err(err).Str("path", path).Msg("Failed to save default config")
	}
	return cfg, nil
}

// ID formats a numeric Discord snowflake the way the gateway sends it.
func ID(v uint64) string {
	return strconv.FormatUint(v, 10)
}
