package main

import (
	"github.com/spf13/cobra"

	"github.com/osmwrangle/internal/config"
	"github.com/osmwrangle/internal/db"
	"github.com/osmwrangle/internal/web"
)

func createServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report and exploration API over the loaded store",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			server := web.NewServer(web.Config{
				Host: config.GetEnv("WEB_HOST", "0.0.0.0"),
				Port: config.GetEnvInt("WEB_PORT", 8080),
			}, conn.DB)

			return server.Start()
		},
	}
}
