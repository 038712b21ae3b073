// Package cli provides the cobra command tree for the listx binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/listx/internal/config"
	"github.com/comalice/listx/internal/production"
	"github.com/comalice/listx/pkg/logger"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Deps holds injectable dependencies. Zero fields get defaults.
type Deps struct {
	// Logger, when set, is used instead of building one from the configured level.
	Logger logger.Logger
	// Visualizer renders list snapshots.
	Visualizer production.Visualizer
}

type app struct {
	deps Deps
	cfg  *config.Config
	lggr logger.Logger
}

// NewRootCommand creates the listx root command with all subcommands.
//
// Usage:
//
//	if err := cli.NewRootCommand(cli.Deps{}).Execute(); err != nil {
//	    os.Exit(1)
//	}
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Visualizer == nil {
		deps.Visualizer = &production.ChainVisualizer{}
	}
	a := &app{deps: deps}

	cmd := &cobra.Command{
		Use:           "listx",
		Short:         "Exercise the listx sequence container",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.lggr != nil {
				_ = a.lggr.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "listx.yaml", "Path to the config file")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format (text, json, dot)")

	cmd.AddCommand(
		newRunCmd(a),
		newDumpCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	if a.deps.Logger != nil {
		a.lggr = a.deps.Logger
		return nil
	}
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	lc := logger.Config{Level: lvl}
	lggr, err := lc.New()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.lggr = lggr.Named("listx-cli")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the listx version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "listx %s\n", Version)
		},
	}
}
