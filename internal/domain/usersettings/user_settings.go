// Package usersettings provides the per-user AI persona preferences and the
// application-wide theme.
package usersettings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"jan-chat/internal/utils/platformerrors"
)

// Preferences is the record persisted in a user's slot.
type Preferences struct {
	AIMood         string `json:"aiMood"`
	AIInstructions string `json:"aiInstructions"`
}

// DefaultPreferences returns the values used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{AIMood: "", AIInstructions: ""}
}

// IsEmpty reports whether no persona text is set.
func (p Preferences) IsEmpty() bool {
	return strings.TrimSpace(p.AIMood) == "" && strings.TrimSpace(p.AIInstructions) == ""
}

// Store is a persistent key-value slot.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// SlotKey namespaces the preferences slot by userKey.
func SlotKey(userKey string) string {
	return "preferences:" + userKey
}

// Manager loads and saves Preferences.
type Manager struct {
	store Store
	log   zerolog.Logger
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With().Str("component", "settings-manager").Logger(),
	}
}

// Load returns the stored preferences for userKey. Absent, unreadable or
// malformed slots yield DefaultPreferences.
func (m *Manager) Load(ctx context.Context, userKey string) Preferences {
	raw, ok, err := m.store.Get(ctx, SlotKey(userKey))
	if err != nil {
		m.log.Error().Err(err).Str("user_key", userKey).Msg("read preferences slot failed")
		return DefaultPreferences()
	}
	if !ok || len(raw) == 0 {
		return DefaultPreferences()
	}

	var prefs Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		m.log.Warn().Err(err).Str("user_key", userKey).Msg("malformed preferences slot, using defaults")
		return DefaultPreferences()
	}
	return prefs
}

// Save writes mood and instructions to the slot of userKey.
func (m *Manager) Save(ctx context.Context, userKey, mood, instructions string) error {
	raw, err := json.Marshal(Preferences{AIMood: mood, AIInstructions: instructions})
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"encode preferences", err, "5a4e7c0b-91d6-4b0e-8c51-0f5e2f7f4c10")
	}
	if err := m.store.Put(ctx, SlotKey(userKey), raw); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "save preferences")
	}
	return nil
}
