package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

var rootCmd = &cobra.Command{
	Use:   "frontdesk",
	Short: "Terminal console for the hotel record service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app := di.InitializeConsole()

		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("failed to run console: %w", err)
		}

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
