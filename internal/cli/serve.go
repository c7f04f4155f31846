package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wetland/pkg/server"
)

// serveCommand creates the serve command for the browser form and JSON API.
func (c *CLI) serveCommand() *cobra.Command {
	addr := server.DefaultAddr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the design form and JSON API over HTTP",
		Long: `Serve the design form at / and the JSON API under /api/v1.

Routes:
  GET  /                 design form
  POST /                 size the submitted form
  POST /api/v1/size      size a JSON design brief
  GET  /api/v1/plan.svg  plan (or ?viz=schematic) for query inputs
  GET  /healthz          liveness

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			printInfo(cmd.ErrOrStderr(), "Serving on %s", addr)

			srv := server.New(c.newRunner(), logger)
			err := srv.ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}
