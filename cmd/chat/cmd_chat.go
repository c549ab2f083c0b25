package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"jan-chat/internal/application/chatapp"
	"jan-chat/internal/config"
	"jan-chat/internal/domain/usersettings"
	"jan-chat/internal/infrastructure/chatapi"
	"jan-chat/internal/infrastructure/kvstore"
	"jan-chat/internal/infrastructure/logger"
	"jan-chat/internal/interfaces/tui"
)

func runChat(ctx context.Context, cfg *config.ClientConfig) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open client log: %w", err)
	}
	defer logFile.Close()

	log, err := logger.NewWithWriter(logFile, cfg.LogLevel, "json")
	if err != nil {
		return err
	}
	log = log.With().Str("service", "jan-chat").Str("user_key", cfg.UserKey).Logger()

	store, err := kvstore.OpenBolt(cfg.PreferencesPath())
	if err != nil {
		return err
	}
	defer store.Close()

	app := chatapp.New(
		cfg.UserKey,
		chatapi.NewClient(cfg.ServerURL, cfg.RequestTimeout),
		store,
		usersettings.NewThemeContext(cfg.Theme),
		log,
	)

	log.Info().Str("server", cfg.ServerURL).Msg("starting chat client")
	if err := tui.Run(tui.New(app, cfg.RequestTimeout, log)); err != nil {
		log.Error().Err(err).Msg("chat client stopped with error")
		return err
	}
	log.Info().Msg("chat client exited")
	return nil
}

func openSettings(cfg *config.ClientConfig) (*usersettings.Manager, func() error, error) {
	store, err := kvstore.OpenBolt(cfg.PreferencesPath())
	if err != nil {
		return nil, nil, err
	}
	return usersettings.NewManager(store, zerolog.Nop()), store.Close, nil
}
