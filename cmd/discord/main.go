package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/btf-bot/internal/commands"
	"github.com/keshon/btf-bot/internal/config"
	"github.com/keshon/btf-bot/internal/discord"
	"github.com/keshon/btf-bot/internal/dispatch"
	"github.com/keshon/btf-bot/internal/logging"
	"github.com/keshon/btf-bot/internal/middleware"
	"github.com/keshon/btf-bot/pkg/cmd"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		logging.New(nil, "info").Fatal().Err(err).Msg("Invalid environment")
	}
	log := logging.NewWithFile(env.LogLevel, env.LogFile)
	log.Info().Msg("Starting bot...")

	cfg, err := config.LoadOrInit(env.ConfigPath, log.Sub("config"))
	if err != nil {
		log.Fatal().Err(err).Str("path", env.ConfigPath).Msg("Couldn't load config file")
	}

	registry := cmd.NewRegistry()
	commands.Register(registry, middleware.WithCommandLogger(log.Sub("command")))
	for _, label := range registry.Duplicates() {
		log.Warn().Str("label", label).Msg("Label registered more than once, every permitted match will run")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(dispatch.New(cfg, registry, log.Sub("dispatch")), log.Sub("discord"))

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx, env.DiscordToken); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("Received signal, shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	}

	log.Info().Msg("Discord bot exited cleanly")
}
