package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// ClientConfig configures the terminal chat client. Flags on the chat command
// override these values.
type ClientConfig struct {
	ServerURL      string        `env:"CHAT_SERVER_URL" envDefault:"http://localhost:8080"`
	UserKey        string        `env:"CHAT_USER_KEY"`
	DataDir        string        `env:"CHAT_DATA_DIR"`
	Theme          string        `env:"CHAT_THEME" envDefault:"system"`
	RequestTimeout time.Duration `env:"CHAT_REQUEST_TIMEOUT" envDefault:"2m"`
	LogLevel       string        `env:"CHAT_CLIENT_LOG_LEVEL" envDefault:"info"`
}

// LoadClient parses the client environment.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse client env config: %w", err)
	}
	return cfg, nil
}

// Finalize fills derived defaults once flags have been applied.
func (c *ClientConfig) Finalize() error {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.ServerURL == "" {
		return fmt.Errorf("server url must not be empty")
	}
	if strings.TrimSpace(c.UserKey) == "" {
		name := os.Getenv("USER")
		if name == "" {
			name = "local"
		}
		c.UserKey = name
	}
	if strings.TrimSpace(c.DataDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".jan-chat")
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 2 * time.Minute
	}
	return nil
}

// PreferencesPath is the bolt file holding the per-user preference slots.
func (c *ClientConfig) PreferencesPath() string {
	return filepath.Join(c.DataDir, "preferences.db")
}

// LogPath is where the client writes its log while the UI owns the terminal.
func (c *ClientConfig) LogPath() string {
	return filepath.Join(c.DataDir, "client.log")
}
