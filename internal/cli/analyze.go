package cli

import (
	"github.com/spf13/cobra"

	"sqlxref/internal/analyze"
	"sqlxref/internal/report"
	"sqlxref/internal/sqlscan"
)

func newAnalyzeCmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "analyze <file.sql> [more files...]",
		Short: "Extract the table and field identifiers referenced by SQL files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			formatter, err := report.NewFormatter(cfg.Format)
			if err != nil {
				return err
			}

			_, merged, err := analyze.Files(cmd.Context(), args, analyze.Options{
				Workers: cfg.Workers,
				Split:   sqlscan.Options{StripComments: cfg.StripComments},
				Logger:  newLogger(cfg.Verbose),
			})
			if err != nil {
				return err
			}

			out, err := formatter.FormatAnalysis(merged)
			if err != nil {
				return err
			}
			return writeReport(cmd, flags.output, out)
		},
	}

	flags.register(cmd)
	return cmd
}
