package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
	"github.com/ironsheep/picture-tools-mcp/internal/picture"
	"github.com/ironsheep/picture-tools-mcp/internal/seam"
)

// loadPicture decodes path without caching; each command touches one file once.
func loadPicture(path string) (*picture.Picture, error) {
	return imaging.NewPictureCache().Load(path)
}

// carverFromContext builds a Carver using the context's logger and worker count.
func carverFromContext(ctx context.Context) *seam.Carver {
	return seam.NewCarver(
		seam.WithLogger(loggerFromContext(ctx)),
		seam.WithWorkers(configFromContext(ctx).Workers),
	)
}

func newCarveCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "carve [input] [output]",
		Short: "Narrow a picture by removing minimum-energy vertical seams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCarve(cmd.Context(), args[0], args[1], count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of seams to remove")
	return cmd
}

func runCarve(ctx context.Context, in, out string, n int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := loadPicture(in)
	if err != nil {
		return err
	}
	carved, err := carverFromContext(ctx).CarveMany(p, n)
	if err != nil {
		return err
	}
	if err := imaging.Save(carved, out); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Carved %d seams, %dx%d -> %dx%d", n, p.Width(), p.Height(), carved.Width(), carved.Height()))
	return nil
}

func newSeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seam [input] [output]",
		Short: "Print the minimum-energy vertical seam and optionally draw it",
		Long: `Print the minimum-energy vertical seam of a picture as JSON: one x
coordinate per row, top to bottom, and the seam's total cost. When an output
path is given, the picture is also written with the seam painted red.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ""
			if len(args) == 2 {
				out = args[1]
			}
			return runSeam(cmd.Context(), cmd.OutOrStdout(), args[0], out)
		},
	}
}

func runSeam(ctx context.Context, w io.Writer, in, out string) error {
	p, err := loadPicture(in)
	if err != nil {
		return err
	}

	carver := carverFromContext(ctx)
	s, cost, err := carver.ComputeSeam(p)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(struct {
		Seam seam.Seam `json:"seam"`
		Cost int       `json:"cost"`
	}{s, cost}); err != nil {
		return err
	}

	if out == "" {
		return nil
	}
	shown, err := carver.ShowSeam(p)
	if err != nil {
		return err
	}
	return imaging.Save(shown, out)
}
