package game

// Manager owns at most one live session and a monotonically increasing
// generation counter. Deferred presentation callbacks (countdown ticks, the
// delayed game-over overlay) capture the generation current at scheduling
// time and validate it before acting, so a callback from a superseded
// session fires as a no-op instead of mutating a newer session's state.
//
// The manager is driven entirely from the platform's single frame loop, so
// no locking is needed.
type Manager struct {
	current *Session
	gen     uint64
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Replace installs a new session as the current one, invalidating every
// generation handed out before, and returns the new generation.
func (m *Manager) Replace(s *Session) uint64 {
	m.gen++
	m.current = s
	return m.gen
}

// Current returns the live session, or nil before the first Replace.
func (m *Manager) Current() *Session {
	return m.current
}

// Generation returns the current generation counter.
func (m *Manager) Generation() uint64 {
	return m.gen
}

// Valid reports whether a captured generation still refers to the live
// session. Deferred callbacks must check this before touching anything.
func (m *Manager) Valid(gen uint64) bool {
	return m.current != nil && gen == m.gen
}
