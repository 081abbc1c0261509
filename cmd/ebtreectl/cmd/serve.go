package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebtree/internal/server"
)

var serveAddr string

// serveCmd exposes an in-memory tree over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve an in-memory tree over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		srv := server.New(log, serveAddr)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}
