package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/internal/server"
)

// newServeCmd creates the serve command that runs the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Routes:
  GET  /healthz       liveness probe
  POST /parse         EGIF text → JSON graph
  POST /generate      JSON graph → EGIF text
  POST /apply/{rule}  graph + target spec → graph
  POST /run           full pipeline: EGIF + steps → outputs

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			logger := loggerFromContext(c.Context())
			srv := server.New(logger)
			return srv.ListenAndServe(c.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
