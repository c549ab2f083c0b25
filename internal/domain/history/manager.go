package history

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/message"
)

// Remote is the server that holds past conversations.
type Remote interface {
	ListChats(ctx context.Context, userKey string) ([]message.Conversation, error)
	SaveChat(ctx context.Context, conv message.Conversation) (string, error)
	DeleteChat(ctx context.Context, userKey, chatID string) error
	ArchiveAllChats(ctx context.Context, userKey string) (int64, error)
	DeleteAllChats(ctx context.Context, userKey string) (int64, error)
}

// TitleSource names a conversation before it is archived.
type TitleSource interface {
	GenerateTitle(ctx context.Context, messages []message.Message) (string, error)
}

// Level is the severity of a user alert.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notifier surfaces alerts to the user.
type Notifier interface {
	Alert(level Level, text string)
}

// Manager keeps the listing of server-held conversations for one client. It is
// not safe for concurrent use.
type Manager struct {
	remote   Remote
	titles   TitleSource
	notifier Notifier
	log      zerolog.Logger
	listing  []message.Conversation
}

func NewManager(remote Remote, titles TitleSource, notifier Notifier, log zerolog.Logger) *Manager {
	return &Manager{
		remote:   remote,
		titles:   titles,
		notifier: notifier,
		log:      log.With().Str("component", "history-manager").Logger(),
	}
}

// List fetches the conversations of userKey in server order. A failure is
// logged and yields an empty listing.
func (m *Manager) List(ctx context.Context, userKey string) []message.Conversation {
	chats, err := m.remote.ListChats(ctx, userKey)
	if err != nil {
		m.log.Error().Err(err).Str("user_key", userKey).Msg("list chats failed")
		m.listing = nil
		return nil
	}
	m.listing = chats
	return m.Listing()
}

// Listing returns the last fetched conversations.
func (m *Manager) Listing() []message.Conversation {
	out := make([]message.Conversation, len(m.listing))
	copy(out, m.listing)
	return out
}

// Find returns the listed conversation with id.
func (m *Manager) Find(id string) (message.Conversation, bool) {
	for _, c := range m.listing {
		if c.ID == id {
			return c, true
		}
	}
	return message.Conversation{}, false
}

// Delete removes chatID on the server and then from the listing. On failure the
// listing is left untouched and the user is alerted.
func (m *Manager) Delete(ctx context.Context, userKey, chatID string) error {
	if err := m.remote.DeleteChat(ctx, userKey, chatID); err != nil {
		m.log.Error().Err(err).Str("user_key", userKey).Str("chat_id", chatID).Msg("delete chat failed")
		m.notifier.Alert(LevelError, "Failed to delete chat.")
		return err
	}

	kept := m.listing[:0:0]
	for _, c := range m.listing {
		if c.ID != chatID {
			kept = append(kept, c)
		}
	}
	m.listing = kept
	return nil
}

// ArchiveAll archives every conversation of userKey on the server.
func (m *Manager) ArchiveAll(ctx context.Context, userKey string) error {
	count, err := m.remote.ArchiveAllChats(ctx, userKey)
	if err != nil {
		m.log.Error().Err(err).Str("user_key", userKey).Msg("archive all chats failed")
		m.notifier.Alert(LevelError, "Failed to archive chats.")
		return err
	}
	m.notifier.Alert(LevelInfo, fmt.Sprintf("Archived %d chats.", count))
	return nil
}

// DeleteAll deletes every conversation of userKey on the server.
func (m *Manager) DeleteAll(ctx context.Context, userKey string) error {
	count, err := m.remote.DeleteAllChats(ctx, userKey)
	if err != nil {
		m.log.Error().Err(err).Str("user_key", userKey).Msg("delete all chats failed")
		m.notifier.Alert(LevelError, "Failed to delete chats.")
		return err
	}
	m.listing = nil
	m.notifier.Alert(LevelInfo, fmt.Sprintf("Deleted %d chats.", count))
	return nil
}

// Archive titles conv, stores it on the server and refreshes the listing.
// The title falls back to message.DefaultTitle when naming fails.
func (m *Manager) Archive(ctx context.Context, conv message.Conversation) (message.Conversation, error) {
	name, err := m.titles.GenerateTitle(ctx, conv.Messages)
	if err != nil || name == "" {
		if err != nil {
			m.log.Warn().Err(err).Msg("title generation failed, using default")
		}
		name = message.DefaultTitle
	}
	conv.Title = name

	id, err := m.remote.SaveChat(ctx, conv)
	if err != nil {
		m.log.Error().Err(err).Str("user_key", conv.UserKey).Msg("save chat failed")
		m.notifier.Alert(LevelError, "Failed to save chat to history.")
		return conv, err
	}
	conv.ID = id
	m.List(ctx, conv.UserKey)
	return conv, nil
}

// Snapshot returns an independent copy of m that reports to notifier. Work
// that leaves the UI loop runs on a snapshot; Adopt installs its outcome.
func (m *Manager) Snapshot(notifier Notifier) *Manager {
	return &Manager{
		remote:   m.remote,
		titles:   m.titles,
		notifier: notifier,
		log:      m.log,
		listing:  m.Listing(),
	}
}

// Adopt replaces the listing with the one held by snapshot.
func (m *Manager) Adopt(snapshot *Manager) {
	m.listing = snapshot.Listing()
}
