// Package cli implements the picture-mcp command-line interface.
//
// With no subcommand the binary runs the MCP server on stdio. The other
// commands apply a single operation to an image file and write the result:
//   - serve: Run the MCP server (the default)
//   - carve: Remove vertical seams
//   - seam: Print the minimum-energy seam, optionally drawing it
//   - fill: Paint-bucket fill from a seed pixel
//   - edges: Render the edge map
//
// # Logging
//
// All commands log to stderr, since stdout carries the MCP protocol.
// --verbose (-v) selects debug level; otherwise log_level from the config
// file (or $PICTURE_MCP_LOG_LEVEL) applies. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/picture-tools-mcp/internal/config"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version and
// reported to MCP clients. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the picture-mcp CLI and returns an error if any command fails.
// Errors are returned, not printed; the caller reports them.
// Cancelling ctx stops the MCP server, even while it waits for input.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Diagnostics are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "picture-mcp",
		Short:         "Seam carving, region fill and edge detection for pictures",
		Long:          `picture-mcp exposes content-aware resizing, paint-bucket fill and edge detection as MCP tools over stdio, and as one-shot commands on image files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := cfg.Level()
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		RunE: serve.RunE,
	}

	root.SetVersionTemplate(fmt.Sprintf("picture-mcp %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default $"+config.EnvConfig+")")

	root.AddCommand(serve)
	root.AddCommand(newCarveCmd())
	root.AddCommand(newSeamCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newEdgesCmd())

	return root
}
