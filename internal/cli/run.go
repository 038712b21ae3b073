package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/listx"
	"github.com/comalice/listx/internal/config"
	"github.com/comalice/listx/internal/script"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a YAML operation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load script: %w", err)
			}
			if strict, _ := cmd.Flags().GetBool("stop-on-error"); strict {
				s.StopOnError = true
			}

			rep, runErr := script.Run(cmd.Context(), s, a.lggr)
			if rep != nil {
				if err := a.writeReport(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			}
			if runErr != nil {
				a.lggr.Errorw("Script aborted", "script", s.Name, "err", runErr)
				return runErr
			}
			return nil
		},
	}
	cmd.Flags().Bool("stop-on-error", false, "Abort at the first failing step")

	return cmd
}

func (a *app) writeReport(w io.Writer, rep *script.Report) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatDOT:
		final := listx.From(rep.Final, listx.WithName(rep.Name))
		_, err := io.WriteString(w, a.deps.Visualizer.ExportDOT(final.Snapshot()))
		return err
	default:
		for _, r := range rep.Results {
			line := fmt.Sprintf("#%d %s", r.Step, r.Op)
			if r.Output != "" {
				line += " -> " + r.Output
			}
			if r.Err != "" {
				line += " !! " + r.Err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "final %v\n", rep.Final)
		return err
	}
}
