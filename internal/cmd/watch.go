package cmd

import (
	"fmt"

	"flowdeck/internal/page"
	"flowdeck/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive flow-instance page",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newFileLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	svc := newService(cfg, logger)
	model := tui.NewModel(svc, page.DetailFailurePolicy(cfg.Page.DetailFailurePolicy), logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("page exited with error: %w", err)
	}
	return nil
}
