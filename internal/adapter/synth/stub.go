// Package synth provides the placeholder synthesizer used until a real
// engine is plugged in.
package synth

import "context"

// Stub returns a fixed placeholder instead of real audio. It satisfies the
// synthesizer contract that no valid voice/text pair may fail.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (*Stub) Synthesize(_ context.Context, voice, _ string) ([]byte, error) {
	return []byte("FAKE_AUDIO_FOR_" + voice), nil
}
