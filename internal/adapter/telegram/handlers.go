package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"tts-telegram-bot/internal/usecase/speech"
	"tts-telegram-bot/internal/usecase/voices"
)

const callbackPrefixVoice = "select_voice:"

// record_voice is missing from the library's chat action constants.
const chatActionRecordVoice = "record_voice"

const welcomeText = "Welcome! I can convert your text to speech.\n" +
	"Use /voice to select a voice.\n" +
	"Use /newvoice <name> to add a new voice (then send a voice message or a .wav file).\n" +
	"Use /cancel to abort adding a voice."

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !isAllowedUser(msg.From.ID, b.cfg) {
		b.sendText(msg.Chat.ID, msg.MessageID, "access denied")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if payload, mimeType, ok := audioPayload(msg); ok {
		b.handleAudio(msg, payload, mimeType)
		return
	}

	if msg.Text != "" {
		b.handleText(ctx, msg)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.sendText(msg.Chat.ID, msg.MessageID, welcomeText)
	case "voice":
		b.sendVoiceMenu(msg.Chat.ID, msg.MessageID)
	case "newvoice":
		b.handleNewVoice(msg)
	case "cancel":
		b.handleCancel(msg)
	default:
		b.sendText(msg.Chat.ID, msg.MessageID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) sendVoiceMenu(chatID int64, replyTo int) {
	available := b.voices.Available()
	if len(available) == 0 {
		b.sendText(chatID, replyTo, "No voices available. Use /newvoice <name> to add one.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(available))
	for _, name := range available {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, callbackPrefixVoice+name),
		))
	}

	menu := tgbotapi.NewMessage(chatID, "Select a voice:")
	menu.ReplyToMessageID = replyTo
	menu.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(menu); err != nil {
		b.log.Warn("failed to send voice menu", zap.Error(err))
	}
}

func (b *Bot) handleNewVoice(msg *tgbotapi.Message) {
	raw := strings.TrimSpace(msg.CommandArguments())
	if raw == "" {
		b.sendText(msg.Chat.ID, msg.MessageID, "Usage: /newvoice <voice_name>")
		return
	}

	name, err := b.voices.Register(msg.From.ID, raw)
	if err != nil {
		switch {
		case errors.Is(err, voices.ErrInvalidName):
			b.sendText(msg.Chat.ID, msg.MessageID,
				"Invalid voice name. Please use letters, digits, underscores or hyphens.")
		case errors.Is(err, voices.ErrNameTaken):
			b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
				"A voice named '%s' already exists. Choose a different name.", name))
		default:
			b.log.Warn("voice registration failed", zap.Error(err))
			b.sendText(msg.Chat.ID, msg.MessageID, "Something went wrong, please try again.")
		}
		return
	}

	b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
		"Okay, preparing to add new voice: '%s'.\n"+
			"Please send the voice recording now (as a voice message or a .wav audio file).", name))
}

func (b *Bot) handleCancel(msg *tgbotapi.Message) {
	name, ok := b.voices.Cancel(msg.From.ID)
	if !ok {
		b.sendText(msg.Chat.ID, msg.MessageID, "No voice registration in progress.")
		return
	}
	b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
		"Cancelled registration of voice '%s'.", name))
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	if pending, ok := b.voices.Pending(userID); ok {
		b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
			"I'm still waiting for an audio file for the voice '%s'.\n"+
				"Please send a voice message or a .wav file, or use /cancel to abort.", pending))
		return
	}

	b.sendChatAction(msg.Chat.ID, chatActionRecordVoice)

	result, err := b.speech.Speak(ctx, userID, msg.Text)
	if err != nil {
		if errors.Is(err, speech.ErrEmptyText) {
			b.sendText(msg.Chat.ID, msg.MessageID, "I need some text to speak.")
			return
		}
		b.log.Warn("speech synthesis failed",
			zap.Int64("user_id", userID), zap.Error(err))
		b.sendText(msg.Chat.ID, msg.MessageID,
			"Sorry, I couldn't generate the speech for that text.")
		return
	}

	reply := tgbotapi.NewVoice(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  result.Voice + ".ogg",
		Bytes: result.Audio,
	})
	reply.Caption = "Voice: " + result.Voice
	reply.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(reply); err != nil {
		b.log.Warn("failed to send voice reply", zap.Error(err))
		b.sendText(msg.Chat.ID, msg.MessageID,
			"Sorry, I couldn't generate the speech for that text.")
	}
}

func (b *Bot) handleAudio(msg *tgbotapi.Message, payload audioRef, mimeType string) {
	userID := msg.From.ID

	if _, ok := b.voices.Pending(userID); !ok {
		b.sendText(msg.Chat.ID, msg.MessageID,
			"If you want to add this as a new voice, please use the /newvoice <name> command first.")
		return
	}

	data, err := b.downloadFile(payload.fileID)
	if err != nil {
		b.log.Warn("failed to download voice sample",
			zap.Int64("user_id", userID), zap.Error(err))
		b.sendText(msg.Chat.ID, msg.MessageID,
			"Sorry, I couldn't fetch that audio. Please try sending it again.")
		return
	}

	name, err := b.voices.AcceptUpload(userID, data, mimeType)
	if err != nil {
		if errors.Is(err, voices.ErrNoRegistration) {
			b.sendText(msg.Chat.ID, msg.MessageID,
				"If you want to add this as a new voice, please use the /newvoice <name> command first.")
			return
		}
		b.log.Warn("failed to save voice sample",
			zap.Int64("user_id", userID), zap.Error(err))
		b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
			"Sorry, there was an error saving the voice '%s'. Please try again.", name))
		return
	}

	b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
		"New voice '%s' added successfully!", name))
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.From == nil || !isAllowedUser(query.From.ID, b.cfg) {
		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "access denied")); err != nil {
			b.log.Warn("failed to answer callback query", zap.Error(err))
		}
		return
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Warn("failed to answer callback query", zap.Error(err))
	}
	if query.Message == nil {
		return
	}

	edit := func(text string) {
		msg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
		if _, err := b.api.Send(msg); err != nil {
			b.log.Warn("failed to edit menu message", zap.Error(err))
		}
	}

	if name, ok := strings.CutPrefix(query.Data, callbackPrefixVoice); ok {
		b.speech.Select(query.From.ID, name)
		edit(fmt.Sprintf("Voice set to '%s'.", name))
		return
	}

	b.log.Warn("unknown callback data", zap.String("data", query.Data))
	edit("Sorry, an unknown action occurred.")
}

type audioRef struct {
	fileID string
}

// audioPayload extracts the uploadable audio part of a message: a voice
// note, an audio track, or a document carrying an audio mime type.
func audioPayload(msg *tgbotapi.Message) (audioRef, string, bool) {
	switch {
	case msg.Voice != nil:
		return audioRef{fileID: msg.Voice.FileID}, msg.Voice.MimeType, true
	case msg.Audio != nil:
		return audioRef{fileID: msg.Audio.FileID}, msg.Audio.MimeType, true
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "audio/"):
		return audioRef{fileID: msg.Document.FileID}, msg.Document.MimeType, true
	}
	return audioRef{}, "", false
}

func (b *Bot) sendText(chatID int64, replyTo int, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("failed to send reply", zap.Error(err))
	}
}

func (b *Bot) sendChatAction(chatID int64, action string) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		b.log.Warn("failed to send chat action", zap.Error(err))
	}
}

func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", b.cfg.TelegramToken, file.FilePath)

	resp, err := http.Get(url) // #nosec G107
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
