package quiz

import (
	"sync"
	"time"

	"github.com/rimbac/edubot/internal/content"
)

// RecordedAnswer is one answered question inside a session.
type RecordedAnswer struct {
	QuestionIndex int  `json:"question_index"`
	ChosenOption  int  `json:"chosen_option"`
	Correct       bool `json:"correct"`
}

// Session is the in-flight quiz state for one identity. The question list is
// frozen at start; catalog changes never affect a running session. Owned
// exclusively by the Engine.
type Session struct {
	Subject      string
	Grade        string
	Questions    []content.Question
	Current      int
	CorrectCount int
	Answers      []RecordedAnswer
	StartedAt    time.Time
}

func newSession(subject, grade string, bank []content.Question) *Session {
	questions := make([]content.Question, len(bank))
	copy(questions, bank)

	return &Session{
		Subject:   subject,
		Grade:     grade,
		Questions: questions,
		StartedAt: time.Now(),
	}
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.Current >= len(s.Questions)
}

// SessionStore holds at most one active session per identity. Safe for
// concurrent use; there is no expiry, an abandoned session stays until the
// next start overwrites it or the process restarts.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (st *SessionStore) Get(identity string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[identity]
	return s, ok
}

func (st *SessionStore) Put(identity string, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[identity] = s
}

func (st *SessionStore) Delete(identity string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, identity)
}

func (st *SessionStore) Has(identity string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.sessions[identity]
	return ok
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
