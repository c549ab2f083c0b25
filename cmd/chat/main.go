package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"jan-chat/internal/config"
)

var version = "1.0.0"

func main() {
	loadEnvFiles()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.ClientConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jan-chat",
		Short: "Jan Chat - terminal client for the Jan chat API",
		Long: `jan-chat opens a three panel chat UI in the terminal.

Panels:
  History   saved chats (open, delete, archive all, delete all)
  Chat      the active conversation
  Settings  AI persona and theme

Examples:
  jan-chat --server http://localhost:8080 --user alice
  jan-chat prefs show --user alice
  jan-chat prefs set --user alice --mood Friendly --instructions "Be concise"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Finalize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Chat API base URL")
	flags.StringVarP(&cfg.UserKey, "user", "u", cfg.UserKey, "User key that owns chats and preferences")
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for preferences and the client log")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "Initial theme: dark, light or system")
	flags.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Timeout for each server request")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Client log level")

	rootCmd.AddCommand(newPrefsCmd(cfg))
	return rootCmd
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
