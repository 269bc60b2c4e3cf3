// Package cli wires the sqlxref commands. Commands read files, resolve
// configuration and render reports; extraction and matching live in the
// internal packages they call.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sqlxref/internal/config"
)

// NewRootCmd builds the sqlxref command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlxref",
		Short:         "Extract table/field identifiers from SQL scripts and cross-check them against a reference schema",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newCompareCmd())
	return rootCmd
}

// commonFlags are shared by analyze and compare. Flag values set on the
// command line override the config file.
type commonFlags struct {
	configPath    string
	format        string
	output        string
	workers       int
	stripComments bool
	verbose       bool
}

func (cf *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&cf.configPath, "config", "c", "", "Path to a sqlxref TOML config file")
	cmd.Flags().StringVarP(&cf.format, "format", "f", "", "Report format: table, csv, html, or json")
	cmd.Flags().StringVarP(&cf.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().IntVarP(&cf.workers, "workers", "w", 0, "Number of files parsed concurrently")
	cmd.Flags().BoolVar(&cf.stripComments, "strip-comments", false, "Strip comments from recorded statement text")
	cmd.Flags().BoolVarP(&cf.verbose, "verbose", "v", false, "Enable debug logging")
}

// resolve loads the config file and layers the explicitly set flags on top.
func (cf *commonFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cf.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = cf.format
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = cf.workers
	}
	if cmd.Flags().Changed("strip-comments") {
		cfg.StripComments = cf.stripComments
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = cf.verbose
	}
	return cfg, nil
}

// newLogger returns a stderr logger; debug level when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// writeReport prints the report to stdout or saves it to outPath.
func writeReport(cmd *cobra.Command, outPath, content string) error {
	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output saved to %s\n", outPath)
	return nil
}
