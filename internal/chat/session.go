package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in the conversation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
	IsError   bool
}

func newMessage(role Role, content string, isError bool) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		IsError:   isError,
	}
}

// FallbackReply is appended as an assistant turn when the tutor request fails.
const FallbackReply = "I'm sorry, I'm having trouble responding right now. Please try again."

func welcomeFor(topic string) string {
	if topic == "" {
		return "Hi! I'm your AI tutor. Ask me anything and I'll do my best to help."
	}
	return fmt.Sprintf("Hi! I'm your AI tutor. Ask me anything about %s and I'll do my best to help.", topic)
}

// Session holds the state of one tutoring conversation.
// The session id is stable for the session's lifetime, including across Clear.
type Session struct {
	id       string
	topic    string
	messages []Message
	pending  bool
	turn     uint64
}

// Open starts a new session with a fresh id and a welcome message naming the
// topic when one is supplied.
func Open(topic string) *Session {
	s := &Session{id: uuid.NewString(), topic: topic}
	s.messages = append(s.messages, newMessage(RoleAssistant, welcomeFor(topic), false))
	return s
}

// ID returns the stable session identifier.
func (s *Session) ID() string {
	return s.id
}

// Messages returns the conversation so far, oldest first.
func (s *Session) Messages() []Message {
	return s.messages
}

// Pending reports whether a reply is currently in flight.
func (s *Session) Pending() bool {
	return s.pending
}

// Turn returns the token of the most recent accepted send. A reply that
// echoes an older token belongs to a turn that was already resolved.
func (s *Session) Turn() uint64 {
	return s.turn
}

// Begin records the learner's message and marks the session pending.
// Blank input and sends while a reply is in flight are rejected.
func (s *Session) Begin(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || s.pending {
		return false
	}
	s.messages = append(s.messages, newMessage(RoleUser, text, false))
	s.pending = true
	s.turn++
	return true
}

// Complete records the assistant's reply and clears the pending flag.
func (s *Session) Complete(reply string) {
	if !s.pending {
		return
	}
	s.messages = append(s.messages, newMessage(RoleAssistant, reply, false))
	s.pending = false
}

// Fail records a single fallback turn for a failed request and clears the
// pending flag.
func (s *Session) Fail() {
	if !s.pending {
		return
	}
	s.messages = append(s.messages, newMessage(RoleAssistant, FallbackReply, true))
	s.pending = false
}

// Clear discards the conversation but keeps the session id. The welcome
// message is restored.
func (s *Session) Clear() {
	s.messages = s.messages[:0]
	s.messages = append(s.messages, newMessage(RoleAssistant, welcomeFor(s.topic), false))
	s.pending = false
}
