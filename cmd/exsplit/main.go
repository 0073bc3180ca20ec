// Package main provides the CLI entry point for exsplit-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/exsplit-go/internal/config"
	"github.com/ukaji3/exsplit-go/internal/logging"
	"github.com/ukaji3/exsplit-go/pkg/exsplit"
	"github.com/xuri/excelize/v2"
)

var (
	outputDir string
	dryRun    bool
	logLevel  string
	logFormat string
	envFile   string
	password  string
)

// reportedError marks an error that has already been logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exsplit <input.xlsx> <max-rows>",
		Short: "Split a large spreadsheet into smaller files",
		Long: `exsplit-go splits the first sheet of a spreadsheet into files of at most
<max-rows> data rows each. Every file repeats the header row. Sheets with fewer
than <max-rows> rows are left alone.`,
		Args:          cobra.MatchAll(cobra.ExactArgs(2), validateMaxRows),
		RunE:          run,
		SilenceErrors: true,
	}
	bindFlags(rootCmd.Flags())
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputDir, "output-dir", "o", "", "Directory for output files (env: EXSPLIT_OUTPUT_DIR, default: next to the input)")
	fs.BoolVar(&dryRun, "dry-run", false, "Report the files that would be written without writing them")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env: EXSPLIT_LOG_LEVEL)")
	fs.StringVar(&logFormat, "log-format", "", "Log format: console, json (env: EXSPLIT_LOG_FORMAT)")
	fs.StringVar(&envFile, "env-file", "", "Load environment variables from this file")
	fs.StringVar(&password, "password", "", "Password for an encrypted workbook")
}

func validateMaxRows(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid max rows %q: must be a positive integer", args[1])
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	maxRows, _ := strconv.Atoi(args[1])

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	log := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	opts := exsplit.DefaultOptions()
	opts.MaxRows = maxRows
	opts.OutputDir = cfg.Output.Dir
	opts.Logger = log
	opts.Open = excelize.Options{Password: password}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return report(log, fmt.Errorf("failed to create output directory: %w", err))
		}
	}

	if dryRun {
		return runPlan(cmd, inputPath, opts, log)
	}

	result, err := exsplit.Split(inputPath, opts)
	if result != nil {
		for _, p := range result.Paths() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}
	if err != nil {
		return report(log, err)
	}
	return nil
}

func runPlan(cmd *cobra.Command, inputPath string, opts exsplit.Options, log zerolog.Logger) error {
	plan, err := exsplit.Plan(inputPath, opts)
	if err != nil {
		return report(log, err)
	}
	out := cmd.OutOrStdout()
	if len(plan.ChunkRows) == 0 {
		fmt.Fprintf(out, "%s: %d rows with max %d; nothing to split\n", inputPath, plan.SourceRows, plan.MaxRows)
		return nil
	}
	for i, n := range plan.ChunkRows {
		fmt.Fprintf(out, "%s\t%d rows\n", exsplit.ChunkPath(inputPath, opts.OutputDir, i+1), n)
	}
	return nil
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cfg *config.Config) {
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
}

func report(log zerolog.Logger, err error) error {
	log.Error().Err(err).Msg("split failed")
	return &reportedError{err: err}
}
