package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ivcal/internal/ical"
	"ivcal/internal/logger"
	"ivcal/internal/source"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the interview feed as an iCalendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := NewConfig(configFile)
		if err != nil {
			return err
		}
		if err := logger.PrepareLogger(config.Logger); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		events, err := source.New(config.Source).Fetch(ctx)
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", exportOutput, err)
			}
			defer f.Close()
			out = f
		}
		return ical.Encode(out, events)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the ICS document to this file instead of stdout")
}
