package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smasonuk/prizm"
	"github.com/smasonuk/prizm/internal/config"
	"github.com/smasonuk/prizm/internal/logging"
)

// Set with -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	verbosity  int
	configFile string
	precision  int
	absolute   bool
	strict     bool

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "prizm",
		Short: "Write annotated OBJ files for the prizm viewer",
		Long: `prizm writes OBJ files carrying debug annotations, comments and viewer
commands. Files it writes still open in ordinary OBJ viewers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return opts.load(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/prizm/config.toml)")
	flags.IntVar(&opts.precision, "precision", prizm.RoundTripPrecision, "significant digits for float data, 0 for shortest")
	flags.BoolVar(&opts.absolute, "absolute", false, "reference records with positive (absolute) indices")
	flags.BoolVar(&opts.strict, "strict", false, "fail on zero indices, degenerate elements and absolute appends")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newConcatCmd(opts),
		newBoxCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the config and applies flags the user set explicitly.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if flags.Changed("absolute") {
		cfg.Absolute = o.absolute
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	log.Debug().
		Str("output_dir", cfg.OutputDir).
		Int("precision", cfg.Precision).
		Bool("absolute", cfg.Absolute).
		Bool("strict", cfg.Strict).
		Msg("Config loaded")
	return nil
}

// objErr returns the obj's strict mode error, if any.
func objErr(obj *prizm.Obj, what string) error {
	if err := obj.Err(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prizm version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
