package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tts-telegram-bot/internal/domain"
)

func TestSanitizeVoiceName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "alice", want: "alice"},
		{name: "spaces and punctuation stripped", raw: "My Voice!", want: "MyVoice"},
		{name: "underscore and hyphen kept", raw: "deep_voice-2", want: "deep_voice-2"},
		{name: "only punctuation", raw: "!!!???", want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "unicode stripped", raw: "голос", want: ""},
		{name: "truncated to fifty", raw: strings.Repeat("a", 80), want: strings.Repeat("a", 50)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domain.SanitizeVoiceName(tc.raw))
		})
	}
}
