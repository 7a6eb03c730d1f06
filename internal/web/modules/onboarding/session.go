package onboarding

import (
	"sync"
	"time"

	"github.com/awelabs/awe.agency/internal/adgen"
	"github.com/awelabs/awe.agency/internal/platform/id"
)

// DefaultSessionTTL bounds how long an abandoned wizard session survives.
const DefaultSessionTTL = 2 * time.Hour

// Session is a point-in-time copy of one wizard session.
type Session struct {
	Draft      DraftProfile
	Step       int
	Submitting bool
	HasResult  bool
}

type sessionState struct {
	draft      DraftProfile
	step       int
	submitting bool
	result     *adgen.Result
	expiresAt  time.Time
}

// SessionStore keeps wizard sessions in memory. Sessions expire after the
// configured TTL of inactivity; expiry is the only cleanup abandonment
// needs.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*sessionState
}

// NewSessionStore returns a session store with the given TTL. A
// non-positive TTL falls back to the default.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionState),
	}
}

// Create starts a new session at step 1 and returns its ID.
func (s *SessionStore) Create() (string, error) {
	sessionID, err := id.NewID()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	s.sessions[sessionID] = &sessionState{
		step:      1,
		expiresAt: s.now().Add(s.ttl),
	}
	return sessionID, nil
}

// Snapshot returns a copy of the session, extending its TTL.
func (s *SessionStore) Snapshot(sessionID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.liveLocked(sessionID)
	if !ok {
		return Session{}, false
	}
	state.expiresAt = s.now().Add(s.ttl)
	return snapshotLocked(state), true
}

// Update applies fn to the session's draft and step, extending its TTL. It
// reports whether the session exists.
func (s *SessionStore) Update(sessionID string, fn func(draft *DraftProfile, step *int)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.liveLocked(sessionID)
	if !ok {
		return false
	}
	fn(&state.draft, &state.step)
	state.step = ClampStep(state.step)
	state.expiresAt = s.now().Add(s.ttl)
	return true
}

// BeginSubmit marks the session as submitting. It returns false when the
// session is missing or a submission is already in flight, which makes
// repeated submits no-ops.
func (s *SessionStore) BeginSubmit(sessionID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.liveLocked(sessionID)
	if !ok || state.submitting {
		return Session{}, false
	}
	state.submitting = true
	state.expiresAt = s.now().Add(s.ttl)
	return snapshotLocked(state), true
}

// FinishSubmit clears the in-flight flag and, on success, writes the
// result into the session's handoff slot.
func (s *SessionStore) FinishSubmit(sessionID string, result *adgen.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.liveLocked(sessionID)
	if !ok {
		return
	}
	state.submitting = false
	if result != nil {
		resultCopy := *result
		state.result = &resultCopy
	}
	state.expiresAt = s.now().Add(s.ttl)
}

// Result returns the session's handoff result when one has been written.
// Reads are non-destructive so a results-page reload keeps working until
// the session expires.
func (s *SessionStore) Result(sessionID string) (adgen.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.liveLocked(sessionID)
	if !ok || state.result == nil {
		return adgen.Result{}, false
	}
	state.expiresAt = s.now().Add(s.ttl)
	return *state.result, true
}

func snapshotLocked(state *sessionState) Session {
	draft := state.draft
	draft.Interests = append([]string(nil), state.draft.Interests...)
	return Session{
		Draft:      draft,
		Step:       state.step,
		Submitting: state.submitting,
		HasResult:  state.result != nil,
	}
}

func (s *SessionStore) liveLocked(sessionID string) (*sessionState, bool) {
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if s.now().After(state.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, false
	}
	return state, true
}

func (s *SessionStore) purgeExpiredLocked() {
	now := s.now()
	for sessionID, state := range s.sessions {
		if now.After(state.expiresAt) {
			delete(s.sessions, sessionID)
		}
	}
}
