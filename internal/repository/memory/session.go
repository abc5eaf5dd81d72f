package memory

import (
	"sort"
	"sync"

	"deligo/internal/domain"
)

// SessionStore keeps per-chat app state in memory. Sessions are created
// lazily on first access.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]domain.AppState
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]domain.AppState)}
}

// Get returns the chat's state, creating a fresh session if none exists.
func (s *SessionStore) Get(chatID int64) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(chatID), nil
}

// Update applies fn to the chat's state under the store lock and persists
// the result. If fn returns an error the stored state is left untouched.
func (s *SessionStore) Update(chatID int64, fn func(domain.AppState) (domain.AppState, error)) (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(chatID)
	next, err := fn(state)
	if err != nil {
		return state, err
	}
	s.sessions[chatID] = next
	return next, nil
}

// Reset replaces the chat's state with a fresh session.
func (s *SessionStore) Reset(chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = domain.NewAppState()
	return nil
}

// ChatIDs lists every chat with a session, in stable order.
func (s *SessionStore) ChatIDs() ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *SessionStore) getLocked(chatID int64) domain.AppState {
	state, ok := s.sessions[chatID]
	if !ok {
		state = domain.NewAppState()
		s.sessions[chatID] = state
	}
	return state
}
