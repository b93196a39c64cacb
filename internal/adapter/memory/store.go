package memory

import (
	"sync"
	"time"
)

type pendingEntry struct {
	voice   string
	created time.Time
}

// Store keeps per-user voice state in process memory. State does not
// survive a restart.
type Store struct {
	mu       sync.Mutex
	selected map[int64]string
	pending  map[int64]pendingEntry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		selected: make(map[int64]string),
		pending:  make(map[int64]pendingEntry),
		now:      time.Now,
	}
}

func (s *Store) SelectedVoice(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	voice, ok := s.selected[userID]
	return voice, ok
}

func (s *Store) SetSelectedVoice(userID int64, voice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[userID] = voice
}

func (s *Store) PendingVoice(userID int64, ttl time.Duration) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[userID]
	if !ok {
		return "", false
	}
	if ttl > 0 && entry.created.Before(s.now().Add(-ttl)) {
		delete(s.pending, userID)
		return "", false
	}
	return entry.voice, true
}

func (s *Store) SetPendingVoice(userID int64, voice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = pendingEntry{voice: voice, created: s.now()}
}

func (s *Store) ClearPendingVoice(userID int64, voice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.pending[userID]; ok && entry.voice == voice {
		delete(s.pending, userID)
	}
}

func (s *Store) RemovePendingVoice(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[userID]
	delete(s.pending, userID)
	return ok
}
