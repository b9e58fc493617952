// Package session maintains per-session conversation state: the ordered
// message history and the inferred advisory flow step. State lives only in
// process memory.
package session

import (
	"sync"
	"time"

	"github.com/Joako199002/proyecto-alzarea/pkg/flow"
)

// DefaultID is used when a caller supplies no session identifier. Untagged
// clients share this conversation.
const DefaultID = "default"

// Role tags a message with its speaker.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the dialogue.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is one client's ongoing conversation. The history is append-only
// and always starts with exactly one system message, seeded at creation and
// never mutated afterwards. The flow step only advances until the session
// is reset.
//
// Field access is protected by mu. Whole chat turns (append user, call the
// model, append assistant) additionally serialize on the turn lock so two
// in-flight turns for the same session cannot interleave their mutations.
type Session struct {
	turnMu sync.Mutex

	mu           sync.Mutex
	history      []Message
	flowStep     flow.Step
	presented    bool
	lastActivity time.Time
}

func newSession(systemPrompt string) *Session {
	return &Session{
		history:      []Message{{Role: RoleSystem, Content: systemPrompt}},
		flowStep:     flow.StepGreeting,
		presented:    true,
		lastActivity: time.Now(),
	}
}

// BeginTurn acquires the per-session turn lock. Turns on distinct sessions
// proceed concurrently; turns on the same session run one at a time.
func (s *Session) BeginTurn() {
	s.turnMu.Lock()
}

// EndTurn releases the turn lock.
func (s *Session) EndTurn() {
	s.turnMu.Unlock()
}

// AppendUser records a user turn.
func (s *Session) AppendUser(content string) {
	s.append(Message{Role: RoleUser, Content: content})
}

// AppendAssistant records an assistant turn.
func (s *Session) AppendAssistant(content string) {
	s.append(Message{Role: RoleAssistant, Content: content})
}

func (s *Session) append(m Message) {
	s.mu.Lock()
	s.history = append(s.history, m)
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// History returns a copy of the message history, oldest first.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of messages, system prompt included.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// FlowStep returns the currently inferred advisory step.
func (s *Session) FlowStep() flow.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flowStep
}

// AdvanceFlow moves the flow step forward. Steps never regress; a lower
// inferred step leaves the current one in place.
func (s *Session) AdvanceFlow(step flow.Step) {
	s.mu.Lock()
	if step > s.flowStep {
		s.flowStep = step
	}
	s.mu.Unlock()
}

func (s *Session) touchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
