package session

import (
	"context"
	"strings"

	"jan-chat/internal/domain/message"
)

// Preamble is the fixed onboarding instruction every conversation starts with.
const Preamble = "You are Jan, a helpful research assistant. " +
	"When the user asks for a report, write the full report and include the literal token " +
	message.DownloadMarker + " on its own line so the user can download it. " +
	"Always finish your answer with a references block that starts with \"References:\" and lists one source per line, " +
	"or with the literal \"" + message.NoReferences + "\" when you used no sources."

// State is the lifecycle state of the store.
type State int

const (
	StateUnmounted State = iota
	StateMounted
)

func (s State) String() string {
	if s == StateMounted {
		return "mounted"
	}
	return "unmounted"
}

// Store owns the ordered message list of the active conversation. It is not
// safe for concurrent use; the UI loop is its only writer.
type Store struct {
	state        State
	conversation message.Conversation
	preambleRuns int
}

// NewStore returns an unmounted, empty store for userKey.
func NewStore(userKey string) *Store {
	return &Store{
		conversation: message.Conversation{UserKey: userKey, Title: message.DefaultTitle},
	}
}

// PreambleMessage builds the system message carrying Preamble.
func PreambleMessage() message.Message {
	return message.Message{Role: message.RoleSystem, Content: Preamble}
}

// Mount moves the store into the mounted state. The system preamble is ensured
// on that transition only; mounting an already mounted store does nothing.
func (s *Store) Mount() {
	if s.state == StateMounted {
		return
	}
	s.state = StateMounted
	s.EnsureSystemPreamble()
}

// Unmount leaves the mounted state. The messages are kept.
func (s *Store) Unmount() {
	s.state = StateUnmounted
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// PreambleRuns reports how many times EnsureSystemPreamble has executed.
func (s *Store) PreambleRuns() int {
	return s.preambleRuns
}

// Start resets the active conversation to the single preamble message.
func (s *Store) Start() {
	s.conversation = message.Conversation{
		UserKey:  s.conversation.UserKey,
		Title:    message.DefaultTitle,
		Messages: []message.Message{PreambleMessage()},
	}
}

// Append adds message at the end. Role and content are required.
func (s *Store) Append(ctx context.Context, m message.Message) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}
	s.conversation.Messages = append(s.conversation.Messages, m)
	return nil
}

// EnsureSystemPreamble inserts the preamble when the list is empty and prepends
// it when the first message is not a system message.
func (s *Store) EnsureSystemPreamble() {
	s.preambleRuns++
	msgs := s.conversation.Messages
	if len(msgs) > 0 && msgs[0].Role == message.RoleSystem {
		return
	}
	s.conversation.Messages = append([]message.Message{PreambleMessage()}, msgs...)
}

// Clear empties the active conversation.
func (s *Store) Clear() {
	s.conversation.Messages = nil
	s.conversation.ID = ""
	s.conversation.Title = message.DefaultTitle
}

// Replace loads an existing conversation, for example one opened from history.
func (s *Store) Replace(conv message.Conversation) {
	userKey := s.conversation.UserKey
	s.conversation = message.Conversation{
		ID:       conv.ID,
		Title:    conv.DisplayTitle(),
		Messages: message.Clone(conv.Messages),
		UserKey:  userKey,
	}
}

// Messages returns a copy of the active messages.
func (s *Store) Messages() []message.Message {
	return message.Clone(s.conversation.Messages)
}

// Conversation returns a copy of the active conversation.
func (s *Store) Conversation() message.Conversation {
	conv := s.conversation
	conv.Messages = message.Clone(conv.Messages)
	return conv
}

// Title is the active conversation title.
func (s *Store) Title() string {
	return s.conversation.DisplayTitle()
}

// UserKey is the owner of the active conversation.
func (s *Store) UserKey() string {
	return s.conversation.UserKey
}

// HasUserContent reports whether anything beyond system messages was exchanged.
func (s *Store) HasUserContent() bool {
	for _, m := range s.conversation.Messages {
		if m.Role != message.RoleSystem && strings.TrimSpace(m.Content) != "" {
			return true
		}
	}
	return false
}
