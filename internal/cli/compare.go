package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sqlxref/internal/analyze"
	"sqlxref/internal/match"
	"sqlxref/internal/report"
	"sqlxref/internal/schema"
	"sqlxref/internal/sqlscan"
)

func newCompareCmd() *cobra.Command {
	var flags commonFlags
	var schemaPath string
	var schemaDSN string
	var schemaDB string
	var onlyMissing bool

	cmd := &cobra.Command{
		Use:   "compare <file.sql> [more files...]",
		Short: "Cross-check SQL files against a reference schema",
		Long: `Compare extracts the identifiers referenced by the given SQL files and
checks each reference schema entry (table_name, field_name) against them.
The schema comes from a CSV or TOML file (--schema) or from a live MySQL
database (--schema-dsn with --schema-db).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if schemaPath == "" {
				schemaPath = cfg.SchemaPath
			}

			formatter, err := report.NewFormatter(cfg.Format)
			if err != nil {
				return err
			}

			// Schema problems block the comparison outright; extraction
			// results stay reachable through the analyze command.
			entries, err := loadSchema(cmd, schemaPath, schemaDSN, schemaDB)
			if err != nil {
				if errors.Is(err, schema.ErrMissingColumns) {
					return fmt.Errorf("invalid reference schema, comparison not run: %w", err)
				}
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

			rows, err := match.Compare(merged, entries)
			if err != nil {
				return err
			}

			c := &report.Comparison{
				Rows:    rows,
				Stats:   match.Coverage(rows),
				SQLOnly: match.SQLOnlyItems(merged, entries),
			}
			if onlyMissing {
				c.Rows = match.Unused(rows)
			}

			out, err := formatter.FormatComparison(c)
			if err != nil {
				return err
			}
			return writeReport(cmd, flags.output, out)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Reference schema file (.csv or .toml)")
	cmd.Flags().StringVar(&schemaDSN, "schema-dsn", "", "MySQL DSN to load the reference schema from")
	cmd.Flags().StringVar(&schemaDB, "schema-db", "", "Database name for --schema-dsn")
	cmd.Flags().BoolVar(&onlyMissing, "only-missing", false, "Show only schema entries not found in the SQL")
	return cmd
}

func loadSchema(cmd *cobra.Command, path, dsn, db string) ([]schema.Entry, error) {
	switch {
	case dsn != "":
		return schema.LoadMySQL(cmd.Context(), dsn, db)
	case path != "":
		return schema.LoadFile(path)
	default:
		return nil, errors.New("a reference schema is required: pass --schema or --schema-dsn")
	}
}
