package speech_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tts-telegram-bot/internal/adapter/memory"
	"tts-telegram-bot/internal/config"
	"tts-telegram-bot/internal/usecase/speech"
)

var errEngineDown = errors.New("engine down")

type fixedCatalog struct {
	names []string
}

func (c *fixedCatalog) List() []string            { return c.names }
func (c *fixedCatalog) Exists(string) bool        { return false }
func (c *fixedCatalog) Save(string, []byte) error { return nil }

type mockSynth struct {
	fail      bool
	lastVoice string
	lastText  string
}

func (m *mockSynth) Synthesize(_ context.Context, voice, text string) ([]byte, error) {
	if m.fail {
		return nil, errEngineDown
	}
	m.lastVoice = voice
	m.lastText = text
	return []byte("audio for " + voice), nil
}

func newService(names ...string) (*speech.Service, *memory.Store, *mockSynth) {
	store := memory.NewStore()
	synth := &mockSynth{}
	cfg := config.Config{DefaultVoice: "default"}
	return speech.NewService(store, &fixedCatalog{names: names}, synth, cfg), store, synth
}

func TestResolvePrefersExplicitSelection(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService("alice", "bob")
	svc.Select(1, "bob")

	assert.Equal(t, "bob", svc.Resolve(1))
}

func TestResolveSelectionBeatsEmptyCatalog(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService()
	svc.Select(1, "ghost")

	assert.Equal(t, "ghost", svc.Resolve(1))
}

func TestResolveFallsBackToFirstAvailable(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService("alice", "bob")

	assert.Equal(t, "alice", svc.Resolve(1))
}

func TestResolveFallsBackToDefault(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService()

	assert.Equal(t, "default", svc.Resolve(1))
}

func TestSpeakRejectsEmptyText(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService("alice")

	_, err := svc.Speak(context.Background(), 1, "   ")
	require.ErrorIs(t, err, speech.ErrEmptyText)
}

func TestSpeakUsesResolvedVoice(t *testing.T) {
	t.Parallel()

	svc, _, synth := newService("alice", "bob")
	svc.Select(1, "bob")

	result, err := svc.Speak(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "bob", result.Voice)
	assert.Equal(t, []byte("audio for bob"), result.Audio)
	assert.Equal(t, "bob", synth.lastVoice)
	assert.Equal(t, "hello", synth.lastText)
}

func TestSpeakFailureLeavesSelectionUntouched(t *testing.T) {
	t.Parallel()

	svc, store, synth := newService("alice")
	svc.Select(1, "alice")
	synth.fail = true

	_, err := svc.Speak(context.Background(), 1, "hello")
	require.ErrorIs(t, err, errEngineDown)

	voice, ok := store.SelectedVoice(1)
	require.True(t, ok)
	assert.Equal(t, "alice", voice)
}
