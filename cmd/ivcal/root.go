package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ivcal/internal/app"
	"ivcal/internal/logger"
	"ivcal/internal/source"
	memorystorage "ivcal/internal/storage/memory"
	"ivcal/internal/ui"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ivcal",
	Short: "Terminal calendar for interview scheduling",
	Long: "ivcal renders scheduled interviews in day, week, month and year grids,\n" +
		"loading them from the configured JSON feed.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := NewConfig(configFile)
		if err != nil {
			return err
		}
		if err := logger.PrepareLogger(config.Logger); err != nil {
			return err
		}

		calendar := app.New(memorystorage.New(), source.New(config.Source))

		p := tea.NewProgram(ui.NewModel(calendar), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Errorf("ui stopped: %v", err)
			return fmt.Errorf("failed to run ui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./configs/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
