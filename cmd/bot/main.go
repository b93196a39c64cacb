package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tts-telegram-bot/internal/adapter/memory"
	"tts-telegram-bot/internal/adapter/openai"
	"tts-telegram-bot/internal/adapter/synth"
	"tts-telegram-bot/internal/adapter/telegram"
	"tts-telegram-bot/internal/adapter/voicedir"
	"tts-telegram-bot/internal/config"
	"tts-telegram-bot/internal/usecase/speech"
	"tts-telegram-bot/internal/usecase/voices"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.VoiceDir, 0o755); err != nil {
		logger.Warn("could not create voice directory",
			zap.String("dir", cfg.VoiceDir), zap.Error(err))
	}

	store := memory.NewStore()
	catalog := voicedir.New(cfg.VoiceDir, logger)

	var synthesizer speech.Synthesizer
	switch cfg.SynthBackend {
	case config.BackendOpenAI:
		synthesizer = openai.NewClient(cfg.OpenAIKey, cfg.TTSModel, cfg.TTSFormat)
	default:
		synthesizer = synth.NewStub()
	}

	voicesSvc := voices.NewService(store, catalog, cfg, logger)
	speechSvc := speech.NewService(store, catalog, synthesizer, cfg)

	bot, err := telegram.NewBot(cfg, voicesSvc, speechSvc, logger)
	if err != nil {
		logger.Fatal("failed to init telegram bot", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("bot starting", zap.String("backend", cfg.SynthBackend))

	if err := bot.Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("shutdown", zap.Error(err))
			return
		}
		logger.Fatal("bot stopped with error", zap.Error(err))
	}
}
