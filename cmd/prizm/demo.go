package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/smasonuk/prizm"
	"github.com/smasonuk/prizm/internal/logging"
)

var demoFiles = []struct {
	name  string
	build func() *prizm.Obj
}{
	{"documentation.obj", prizm.DocumentationExample},
	{"concatenation.obj", prizm.ConcatenationExample},
}

func newDemoCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the example obj files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = opts.cfg.OutputDir
			}
			return runDemo(cmd, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config, or .)")
	return cmd
}

func runDemo(cmd *cobra.Command, outDir string) error {
	logger := logging.GetLogger("demo")
	defer logging.LogDuration(time.Now(), "demo")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s: %w", outDir, err)
	}

	for _, demo := range demoFiles {
		path := filepath.Join(outDir, demo.name)
		obj := demo.build().SetLogger(logger)
		if err := obj.WriteFile(path); err != nil {
			return err
		}
		printWrote(cmd.ErrOrStderr(), path, obj.VertexCount())
	}
	return nil
}
