// Command transcriber runs the audio transcription relay: a web upload
// endpoint and an optional Telegram bot, both feeding the ElevenLabs
// speech-to-text API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/viprogramm/audio11eleven/config"
	"github.com/viprogramm/audio11eleven/httpclient"
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/media"
	"github.com/viprogramm/audio11eleven/server"
	"github.com/viprogramm/audio11eleven/telegram"
	"github.com/viprogramm/audio11eleven/transcription"
	"github.com/viprogramm/audio11eleven/transcription/elevenlabs"
	"github.com/viprogramm/audio11eleven/web"
)

const serviceName = "transcriber"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault(serviceName).WithError(err).Fatal("failed to load configuration")
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, serviceName)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("service failed")
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	store, err := media.NewStore(cfg.UploadDir, log)
	if err != nil {
		return err
	}

	provider, err := elevenlabs.NewProvider(elevenlabs.Config{
		APIKey: cfg.ElevenLabsAPIKey,
	}, log)
	if err != nil {
		return err
	}
	if !provider.IsAvailable(ctx) {
		log.Warn("ELEVENLABS_API_KEY is not set, transcription requests will fail")
	}

	registry := transcription.NewRegistry()
	registry.Register(provider)
	active, err := registry.Get(elevenlabs.ProviderName)
	if err != nil {
		return err
	}

	srvCfg := server.Config{Port: cfg.Port}
	srvCfg.ApplyDefaults()
	srv := server.New(srvCfg, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(serviceName)

	web.NewHandlers(active, store, log).Register(srv.GinEngine())

	if cfg.BotEnabled() {
		if err := startBot(cfg, log, active, srv); err != nil {
			// The HTTP side keeps working without the bot.
			log.WithError(err).Error("failed to start Telegram bot")
		}
	} else {
		log.Info("BOT_TOKEN is not set, Telegram bot disabled")
	}

	if err := srv.Start(ctx); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("received shutdown signal", map[string]interface{}{
		"signal": sig.String(),
	})

	return srv.Stop(ctx)
}

// startBot wires the Telegram side: webhook route, update handlers and
// webhook registration with the Bot API.
func startBot(cfg *config.Config, log *logger.Logger, provider transcription.Provider, srv *server.Server) error {
	bot, err := telegram.NewBot(cfg.BotToken, log)
	if err != nil {
		return err
	}

	fetcher, err := httpclient.New(httpclient.Config{
		MaxDownloadBytes: cfg.FetchMaxBytes,
	})
	if err != nil {
		return err
	}

	handlers := telegram.NewHandlers(bot, fetcher, provider, log)
	srv.GinEngine().POST(telegram.WebhookPath, telegram.WebhookHandler(handlers))

	if cfg.WebhookURL != "" {
		// Registration failure is non-fatal: updates already queued on the
		// Telegram side are delivered once a later registration succeeds.
		if err := bot.RegisterWebhook(cfg.WebhookURL); err != nil {
			log.WithError(err).Error("failed to register Telegram webhook")
		}
	} else {
		log.Warn("WEBHOOK_URL is not set, skipping webhook registration")
	}

	return nil
}
