package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/picture-tools-mcp/internal/effects"
	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
)

func newEdgesCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "edges [input] [output]",
		Short: "Render edges in black on a white background",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Defaults.EdgeThreshold
			}

			prog := newProgress(loggerFromContext(ctx))
			p, err := loadPicture(args[0])
			if err != nil {
				return err
			}
			if err := imaging.Save(effects.ShowEdges(p, threshold, cfg.Workers), args[1]); err != nil {
				return err
			}
			prog.done("Rendered edges")
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "distance above which a pixel is an edge (default from config)")
	return cmd
}
