package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedVoice(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, ok := store.SelectedVoice(1)
	assert.False(t, ok)

	store.SetSelectedVoice(1, "alice")
	voice, ok := store.SelectedVoice(1)
	require.True(t, ok)
	assert.Equal(t, "alice", voice)

	store.SetSelectedVoice(1, "bob")
	voice, ok = store.SelectedVoice(1)
	require.True(t, ok)
	assert.Equal(t, "bob", voice)

	_, ok = store.SelectedVoice(2)
	assert.False(t, ok, "selections are per user")
}

func TestPendingVoiceLifecycle(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, ok := store.PendingVoice(1, time.Hour)
	assert.False(t, ok)

	store.SetPendingVoice(1, "first")
	store.SetPendingVoice(1, "second")
	voice, ok := store.PendingVoice(1, time.Hour)
	require.True(t, ok)
	assert.Equal(t, "second", voice, "re-registration is last-write-wins")

	store.ClearPendingVoice(1, "stale")
	_, ok = store.PendingVoice(1, time.Hour)
	assert.True(t, ok, "clear with a stale name must not drop the entry")

	store.ClearPendingVoice(1, "second")
	_, ok = store.PendingVoice(1, time.Hour)
	assert.False(t, ok)
}

func TestRemovePendingVoice(t *testing.T) {
	t.Parallel()

	store := NewStore()

	assert.False(t, store.RemovePendingVoice(1))

	store.SetPendingVoice(1, "alice")
	assert.True(t, store.RemovePendingVoice(1))

	_, ok := store.PendingVoice(1, time.Hour)
	assert.False(t, ok)
}

func TestPendingVoiceExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	store.SetPendingVoice(1, "alice")

	now = now.Add(29 * time.Minute)
	_, ok := store.PendingVoice(1, 30*time.Minute)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = store.PendingVoice(1, 30*time.Minute)
	assert.False(t, ok, "entry past the ttl is treated as absent")

	_, ok = store.PendingVoice(1, 0)
	assert.False(t, ok, "expired entry is purged, not merely hidden")
}

func TestPendingVoiceZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.now = func() time.Time { return time.Now().Add(100 * time.Hour) }

	store.SetPendingVoice(1, "alice")
	store.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }

	_, ok := store.PendingVoice(1, 0)
	assert.True(t, ok)
}
