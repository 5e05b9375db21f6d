// README: In-memory conversation sessions; one in-flight turn per session, nothing durable.
package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the ordered message history of one open conversation. The
// mutex serializes turns: a new submission waits until the previous turn's
// reply has been appended.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	mu       sync.Mutex
	messages []Message
}

// History returns a copy of the message log in order.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Session) append(m Message) {
	s.messages = append(s.messages, m)
}

// SessionStore keeps open sessions. Everything lives in process memory:
// closing a session (or the process) discards the history.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*Session{}}
}

// Open creates a session seeded with the assistant's welcome message.
func (st *SessionStore) Open(welcome string) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		messages: []Message{{
			ID:        uuid.NewString(),
			Speaker:   SpeakerAssistant,
			Text:      welcome,
			Timestamp: now,
		}},
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Close discards the session and its history.
func (st *SessionStore) Close(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}
