package domain

import "time"

// SessionStore holds the per-user conversation state: the voice a user has
// picked for synthesis, and the name of a voice whose audio sample we are
// still waiting for. Every method is atomic with respect to its key.
type SessionStore interface {
	SelectedVoice(userID int64) (string, bool)
	SetSelectedVoice(userID int64, voice string)

	// PendingVoice returns the voice name awaiting upload for the user.
	// Entries older than ttl are treated as absent and purged.
	PendingVoice(userID int64, ttl time.Duration) (string, bool)
	SetPendingVoice(userID int64, voice string)
	// ClearPendingVoice removes the pending entry only if it still names
	// voice, so a registration replaced mid-upload is not lost.
	ClearPendingVoice(userID int64, voice string)
	// RemovePendingVoice unconditionally drops the pending entry and
	// reports whether one existed.
	RemovePendingVoice(userID int64) bool
}
