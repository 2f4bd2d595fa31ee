package render

// Key identifies a camera control key, independent of any windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyStrafeLeft
	KeyStrafeRight
	KeyAscend
	KeyDescend
	KeyQuit
)

// KeySet tracks which movement keys are currently held. Inserting a key
// that is already present is a no-op, so auto-repeat key-down events never
// produce more than one entry.
type KeySet map[Key]struct{}

// NewKeySet returns an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Press marks a key as held.
func (s KeySet) Press(key Key) {
	s[key] = struct{}{}
}

// Release marks a key as no longer held.
func (s KeySet) Release(key Key) {
	delete(s, key)
}

// Held reports whether a key is currently held.
func (s KeySet) Held(key Key) bool {
	_, ok := s[key]
	return ok
}
