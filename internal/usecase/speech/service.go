package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tts-telegram-bot/internal/config"
	"tts-telegram-bot/internal/domain"
)

var ErrEmptyText = errors.New("empty text")

// Synthesizer turns text into speech audio in the named voice. A real
// engine may fail; the stub never does.
type Synthesizer interface {
	Synthesize(ctx context.Context, voice, text string) ([]byte, error)
}

type Result struct {
	Voice string
	Audio []byte
}

type Service struct {
	store   domain.SessionStore
	catalog domain.VoiceCatalog
	synth   Synthesizer
	cfg     config.Config
}

func NewService(store domain.SessionStore, catalog domain.VoiceCatalog, synth Synthesizer, cfg config.Config) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		synth:   synth,
		cfg:     cfg,
	}
}

// Select records the user's voice choice. The name is not checked against
// the catalog: in the normal flow it comes from a catalog-derived menu, and
// a stale menu press should still resolve rather than error.
func (s *Service) Select(userID int64, voice string) {
	s.store.SetSelectedVoice(userID, voice)
}

// Resolve picks the voice to synthesize with: the user's explicit choice,
// else the first available voice, else the configured default name. The
// order is a product decision and must not change.
func (s *Service) Resolve(userID int64) string {
	if voice, ok := s.store.SelectedVoice(userID); ok {
		return voice
	}
	if available := s.catalog.List(); len(available) > 0 {
		return available[0]
	}
	return s.cfg.DefaultVoice
}

func (s *Service) Speak(ctx context.Context, userID int64, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	voice := s.Resolve(userID)
	audio, err := s.synth.Synthesize(ctx, voice, text)
	if err != nil {
		return Result{}, fmt.Errorf("synthesize with voice %q: %w", voice, err)
	}

	return Result{Voice: voice, Audio: audio}, nil
}
