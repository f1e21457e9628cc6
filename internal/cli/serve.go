package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/picture-tools-mcp/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP server. Requests are read from stdin, one JSON-RPC message per
line, and responses are written to stdout. Configure it in your MCP client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			logger.Debug("starting server", "version", version, "commit", commit, "built", date,
				"workers", cfg.Workers, "output_dir", cfg.OutputDir)

			srv := server.New(
				server.WithConfig(cfg),
				server.WithLogger(logger),
				server.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
				server.WithVersion(version),
			)
			return srv.Run(ctx)
		},
	}
}
