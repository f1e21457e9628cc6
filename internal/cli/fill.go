package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/picture-tools-mcp/internal/fill"
	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// fillOpts holds the flags for the fill command.
type fillOpts struct {
	x, y      int
	threshold int    // set from config when the flag is absent
	color     string // replacement color as hex
	order     string // comma-separated directions
}

func newFillCmd() *cobra.Command {
	var opts fillOpts

	cmd := &cobra.Command{
		Use:   "fill [input] [output]",
		Short: "Paint-bucket fill the region around a seed pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				opts.threshold = configFromContext(cmd.Context()).Defaults.FillThreshold
			}
			return runFill(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.x, "x", 0, "seed x coordinate")
	cmd.Flags().IntVar(&opts.y, "y", 0, "seed y coordinate")
	cmd.Flags().IntVar(&opts.threshold, "threshold", 0, "colors closer than this to the seed color are filled (default from config)")
	cmd.Flags().StringVar(&opts.color, "color", "#000000", "replacement color (#RGB, #RRGGBB or #RRGGBBAA)")
	cmd.Flags().StringVar(&opts.order, "order", "", "neighbor expansion order naming each direction once, e.g. up,left,down,right")
	return cmd
}

func parseOrder(s string) ([]fill.Direction, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	order := make([]fill.Direction, len(parts))
	for i, part := range parts {
		d, err := fill.ParseDirection(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		order[i] = d
	}
	if err := fill.ValidateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func runFill(ctx context.Context, in, out string, opts *fillOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	c, err := picture.ParseHex(opts.color)
	if err != nil {
		return err
	}
	order, err := parseOrder(opts.order)
	if err != nil {
		return err
	}

	p, err := loadPicture(in)
	if err != nil {
		return err
	}
	region, err := fill.Region(p, opts.x, opts.y, opts.threshold, order...)
	if err != nil {
		return err
	}
	logger.Debug("region", "seed", fmt.Sprintf("(%d,%d)", opts.x, opts.y), "threshold", opts.threshold, "pixels", len(region))

	if err := imaging.Save(fill.Recolor(p, region, c), out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Filled %d pixels", len(region)))
	return nil
}
