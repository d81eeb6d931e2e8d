package main

import (
	"go-doctor-directory/cmd/bootstrap"
	"go-doctor-directory/pkg/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(cfg.Log)
		log.Info("Configuration loaded successfully")

		app, err := bootstrap.New(cfg, log)
		if err != nil {
			log.Fatalf("Failed to initialize application: %v", err)
		}

		return app.Run()
	},
}
