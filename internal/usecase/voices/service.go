// Package voices implements voice registration: a user proposes a name,
// the bot waits for an audio sample, and the sample lands in the catalog.
package voices

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tts-telegram-bot/internal/config"
	"tts-telegram-bot/internal/domain"
)

var (
	ErrInvalidName    = errors.New("invalid voice name")
	ErrNameTaken      = errors.New("voice name already taken")
	ErrNoRegistration = errors.New("no registration in progress")
)

var acceptedMIMETypes = map[string]struct{}{
	"audio/wav":   {},
	"audio/x-wav": {},
	"audio/wave":  {},
}

type Service struct {
	store   domain.SessionStore
	catalog domain.VoiceCatalog
	cfg     config.Config
	log     *zap.Logger
}

func NewService(store domain.SessionStore, catalog domain.VoiceCatalog, cfg config.Config, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		log:     log,
	}
}

func (s *Service) Available() []string {
	return s.catalog.List()
}

// Register opens a registration for the sanitized form of rawName and
// returns it. A registration already open for the user is replaced. No file
// is written until the audio sample arrives.
func (s *Service) Register(userID int64, rawName string) (string, error) {
	name := domain.SanitizeVoiceName(rawName)
	if name == "" {
		return "", ErrInvalidName
	}
	if s.catalog.Exists(name) {
		return name, fmt.Errorf("%w: %s", ErrNameTaken, name)
	}

	s.store.SetPendingVoice(userID, name)
	return name, nil
}

// Pending reports the voice name the user still owes a sample for.
func (s *Service) Pending(userID int64) (string, bool) {
	return s.store.PendingVoice(userID, s.cfg.RegistrationTTL)
}

// Cancel drops the user's open registration, if any, and returns its name.
func (s *Service) Cancel(userID int64) (string, bool) {
	name, ok := s.store.PendingVoice(userID, s.cfg.RegistrationTTL)
	if !ok {
		return "", false
	}
	s.store.RemovePendingVoice(userID)
	return name, true
}

// AcceptUpload stores the sample for the user's open registration. On a
// write failure the registration stays open so the user can resend the
// audio without re-issuing the register command.
func (s *Service) AcceptUpload(userID int64, payload []byte, declaredMIME string) (string, error) {
	name, ok := s.store.PendingVoice(userID, s.cfg.RegistrationTTL)
	if !ok {
		return "", ErrNoRegistration
	}

	if declaredMIME != "" {
		if _, ok := acceptedMIMETypes[declaredMIME]; !ok {
			// Stored anyway; turn this into a reject once transcoding exists.
			s.log.Warn("voice sample mime type is not wav",
				zap.Int64("user_id", userID),
				zap.String("voice", name),
				zap.String("mime", declaredMIME))
		}
	}

	if err := s.catalog.Save(name, payload); err != nil {
		return name, fmt.Errorf("save voice %q: %w", name, err)
	}

	s.store.ClearPendingVoice(userID, name)
	s.log.Info("new voice registered",
		zap.Int64("user_id", userID), zap.String("voice", name))
	return name, nil
}
