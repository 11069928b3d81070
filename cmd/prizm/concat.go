package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smasonuk/prizm"
	"github.com/smasonuk/prizm/internal/logging"
)

func newConcatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "concat OUT IN...",
		Short: "Concatenate obj files that use relative indices",
		Long: `concat appends each input file to the output in order. Inputs must only
reference records with negative (relative) indices; with --strict an input
using absolute indices is an error.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcat(cmd, opts, args[0], args[1:])
		},
	}
}

func runConcat(cmd *cobra.Command, opts *options, out string, inputs []string) error {
	logger := logging.GetLogger("concat")
	obj := opts.cfg.NewObj().SetLogger(logger)

	for _, in := range inputs {
		part, err := readObjFile(in)
		if err != nil {
			return err
		}
		obj.Comment(in).Append(part)
		logger.Debug().Str("path", in).Int("vertices", part.VertexCount()).Msg("appended")
		obj.Newline()
	}

	if err := objErr(obj, "concat"); err != nil {
		return err
	}
	if err := obj.WriteFile(out); err != nil {
		return err
	}
	printWrote(cmd.ErrOrStderr(), out, obj.VertexCount())
	return nil
}

func readObjFile(path string) (*prizm.Obj, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open obj file %s: %w", path, err)
	}
	defer file.Close()

	obj, err := prizm.ReadObj(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}
