package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smasonuk/prizm"
)

type boxOptions struct {
	min      []float64
	max      []float64
	annotate string
	out      string
}

func newBoxCmd(opts *options) *cobra.Command {
	box := &boxOptions{}

	cmd := &cobra.Command{
		Use:   "box",
		Short: "Write an axis-aligned box as a closed polyline",
		Example: `  prizm box --min 0,0,0 --max 1,1,1 --annotate "bounds"
  prizm box --min -1,-1 --max 1,1 --out square.obj`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBox(cmd, opts, box)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&box.min, "min", nil, "minimum corner, x,y or x,y,z")
	flags.Float64SliceVar(&box.max, "max", nil, "maximum corner, x,y or x,y,z")
	flags.StringVar(&box.annotate, "annotate", "", "annotation for the box polyline")
	flags.StringVar(&box.out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func runBox(cmd *cobra.Command, opts *options, box *boxOptions) error {
	if len(box.min) != len(box.max) || len(box.min) < 2 || len(box.min) > 3 {
		return fmt.Errorf("--min and --max need 2 or 3 matching coordinates, got %d and %d", len(box.min), len(box.max))
	}

	obj := opts.cfg.NewObj()
	if len(box.min) == 2 {
		obj.Box2MinMax(prizm.V2(box.min[0], box.min[1]), prizm.V2(box.max[0], box.max[1]))
	} else {
		obj.Box3MinMax(prizm.V3(box.min[0], box.min[1], box.min[2]), prizm.V3(box.max[0], box.max[1], box.max[2]))
	}
	obj.An(box.annotate)

	if err := objErr(obj, "box"); err != nil {
		return err
	}
	if box.out == "" {
		_, err := obj.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := obj.WriteFile(box.out); err != nil {
		return err
	}
	printWrote(cmd.ErrOrStderr(), box.out, obj.VertexCount())
	return nil
}
