package domain

// VoiceCatalog is the inventory of installed voices. A voice is available
// when exactly one audio file named after it exists in the backing store.
type VoiceCatalog interface {
	// List returns the names of all available voices. Order follows the
	// backing store's enumeration and callers must not depend on it.
	// An unreadable store yields an empty list, never an error.
	List() []string
	Exists(name string) bool
	// Save stores payload verbatim as the audio sample for name. The
	// voice must not become visible to List until the write completed.
	Save(name string, payload []byte) error
}
