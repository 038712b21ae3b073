package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/listx"
	"github.com/comalice/listx/internal/config"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [values...]",
		Short: "Build a list and print its node chain",
		Long: "Build a list from the given values, or from the configured seed when none are given,\n" +
			"and print its node chain including both sentinels.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				values = a.cfg.Seed
			}
			l := listx.From(values, listx.WithName(a.cfg.Name), listx.WithLogger(a.lggr))
			a.lggr.Debugw("Dumping list", "len", l.Len())

			snap := l.Snapshot()
			w := cmd.OutOrStdout()
			switch a.cfg.Format {
			case config.FormatJSON:
				data, err := a.deps.Visualizer.ExportJSON(snap)
				if err != nil {
					return fmt.Errorf("export json: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			case config.FormatDOT:
				_, err := io.WriteString(w, a.deps.Visualizer.ExportDOT(snap))
				return err
			default:
				_, err := io.WriteString(w, a.deps.Visualizer.ExportText(snap))
				return err
			}
		},
	}
}
