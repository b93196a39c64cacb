package domain

import "regexp"

const maxVoiceNameLen = 50

var voiceNameStrip = regexp.MustCompile(`[^\w-]`)

// SanitizeVoiceName reduces a proposed voice name to something safe to use
// as a filename stem: ASCII letters, digits, underscore and hyphen, at most
// 50 characters. May return the empty string.
func SanitizeVoiceName(raw string) string {
	name := voiceNameStrip.ReplaceAllString(raw, "")
	if len(name) > maxVoiceNameLen {
		name = name[:maxVoiceNameLen]
	}
	return name
}
