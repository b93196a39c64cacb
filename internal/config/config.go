package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendStub   = "stub"
	BackendOpenAI = "openai"
)

type Config struct {
	TelegramToken   string
	VoiceDir        string
	DefaultVoice    string
	SynthBackend    string
	OpenAIKey       string
	TTSModel        string
	TTSFormat       string
	RegistrationTTL time.Duration
	AdminUserIDs    []int64
	AllowedUserIDs  []int64
}

func Load(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("could not read %s: %v", path, err)
	}

	cfg := Config{
		VoiceDir:        getenvDefault("VOICE_DIR", "voices"),
		DefaultVoice:    getenvDefault("DEFAULT_VOICE", "default"),
		SynthBackend:    getenvDefault("SYNTH_BACKEND", BackendStub),
		TTSModel:        getenvDefault("OPENAI_TTS_MODEL", "gpt-4o-mini-tts"),
		TTSFormat:       getenvDefault("OPENAI_TTS_FORMAT", "opus"),
		RegistrationTTL: time.Duration(getenvIntDefault("REGISTRATION_TTL_MINUTES", 30)) * time.Minute,
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.TelegramToken == "" {
		return cfg, errors.New("telegram token is required")
	}

	switch cfg.SynthBackend {
	case BackendStub:
	case BackendOpenAI:
		cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.OpenAIKey == "" {
			return cfg, errors.New("openai api key is required for the openai backend")
		}
	default:
		return cfg, fmt.Errorf("unknown synth backend %q", cfg.SynthBackend)
	}

	cfg.AdminUserIDs = parseIDs(os.Getenv("ADMIN_USER_IDS"))
	cfg.AllowedUserIDs = parseIDs(os.Getenv("ALLOWED_TELEGRAM_USER_IDS"))

	return cfg, nil
}

func parseIDs(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			log.Printf("skipping user id %q: %v", p, err)
			continue
		}
		ids = append(ids, v)
	}
	return ids
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
