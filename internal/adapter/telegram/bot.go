package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"tts-telegram-bot/internal/config"
	"tts-telegram-bot/internal/usecase/speech"
	"tts-telegram-bot/internal/usecase/voices"
)

// botAPI is the slice of the Telegram client the handlers need. Keeping it
// an interface lets routing tests run against a recording fake.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFile(cfg tgbotapi.FileConfig) (tgbotapi.File, error)
}

type Bot struct {
	client *tgbotapi.BotAPI
	api    botAPI
	cfg    config.Config
	voices *voices.Service
	speech *speech.Service
	log    *zap.Logger
}

func NewBot(cfg config.Config, voicesSvc *voices.Service, speechSvc *speech.Service, log *zap.Logger) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		client: client,
		api:    client,
		cfg:    cfg,
		voices: voicesSvc,
		speech: speechSvc,
		log:    log,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.client.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			switch {
			case update.CallbackQuery != nil:
				go b.handleCallback(update.CallbackQuery)
			case update.Message != nil:
				msg := update.Message
				if msg.From == nil {
					continue
				}
				go b.handleMessage(ctx, msg)
			}
		}
	}
}

func isAllowedUser(userID int64, cfg config.Config) bool {
	for _, id := range cfg.AdminUserIDs {
		if id == userID {
			return true
		}
	}

	if len(cfg.AllowedUserIDs) == 0 {
		return true
	}

	for _, id := range cfg.AllowedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}
