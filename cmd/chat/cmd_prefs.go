package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jan-chat/internal/config"
)

func newPrefsCmd(cfg *config.ClientConfig) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the stored AI persona preferences",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the preferences of the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, closeStore, err := openSettings(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			prefs := settings.Load(cmd.Context(), cfg.UserKey)
			fmt.Fprintf(cmd.OutOrStdout(), "user:         %s\nmood:         %s\ninstructions: %s\n",
				cfg.UserKey, prefs.AIMood, prefs.AIInstructions)
			return nil
		},
	}

	var mood, instructions string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Store new preferences for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, closeStore, err := openSettings(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			current := settings.Load(cmd.Context(), cfg.UserKey)
			if !cmd.Flags().Changed("mood") {
				mood = current.AIMood
			}
			if !cmd.Flags().Changed("instructions") {
				instructions = current.AIInstructions
			}
			if err := settings.Save(cmd.Context(), cfg.UserKey, mood, instructions); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "preferences saved")
			return nil
		},
	}
	setCmd.Flags().StringVar(&mood, "mood", "", "AI mood, e.g. Friendly")
	setCmd.Flags().StringVar(&instructions, "instructions", "", "Standing instructions for the AI")

	prefsCmd.AddCommand(showCmd, setCmd)
	return prefsCmd
}
