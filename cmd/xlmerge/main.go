// Package main provides the CLI entry point for xlmerge.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlmerge/pkg/xlmerge"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/output"
)

const usage = "Usage: xlmerge <input_file1> <input_file2> ... <output_file>"

var (
	configPath         string
	summarySheet       string
	keyPrefix          string
	linkCell           string
	skipMissingSummary bool
	reportPath         string
	reportFormat       string
	pretty             bool
	dryRun             bool
	quiet              bool
	verbose            bool
	logFormat          string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlmerge <input.xlsx>... <output.xlsx>",
		Short: "Merge Excel workbooks and consolidate their summary sheets",
		Long: `xlmerge copies every sheet of the input workbooks into one output workbook
(first occurrence of a sheet name wins) and consolidates the inputs' "Summary"
sheets into a single summary: one header row, one row per distinct key in the
first column, formatting preserved, each key linked to its Wallet_<key> sheet.

The last argument is the output file; all others are inputs, merged in order.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	defaults := xlmerge.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML file with merge options")
	flags.StringVar(&summarySheet, "summary-sheet", defaults.SummarySheet, "Name of the sheet consolidated across inputs")
	flags.StringVar(&keyPrefix, "key-prefix", defaults.KeyPrefix, "Prefix of the sheet each summary key links to")
	flags.StringVar(&linkCell, "link-cell", defaults.LinkCell, "Cell summary hyperlinks point at")
	flags.BoolVar(&skipMissingSummary, "skip-missing-summary", false, "Copy sheets of inputs without a summary sheet instead of failing")
	flags.StringVar(&reportPath, "report", "", "Write a run report to this file (- for stdout)")
	flags.StringVar(&reportFormat, "report-format", string(output.FormatJSON), "Report format: json or toon")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON reports")
	flags.BoolVar(&dryRun, "dry-run", false, "Print what would be merged without writing the output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log skipped sheets and rows")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	if len(args) < 2 {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	outputPath := args[len(args)-1]
	inputs := args[:len(args)-1]

	format, err := output.ParseFormat(reportFormat)
	if err != nil {
		return err
	}
	logger, err := newLogger(stdout)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	opts.Logger = logger

	if dryRun {
		plan, err := xlmerge.Plan(inputs, outputPath, opts)
		if err != nil {
			return fmt.Errorf("plan failed: %w", err)
		}
		data, err := output.Encode(plan, format, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	report, err := xlmerge.Merge(inputs, outputPath, opts)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	if reportPath != "" {
		if err := writeReport(stdout, report, format); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if !quiet {
		fmt.Fprint(stdout, renderSummary(report))
	}

	return nil
}

// resolveOptions layers defaults, the config file and explicitly set flags.
func resolveOptions(cmd *cobra.Command) (xlmerge.Options, error) {
	opts := xlmerge.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = xlmerge.LoadConfig(configPath, opts)
		if err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("summary-sheet") {
		opts.SummarySheet = summarySheet
	}
	if flags.Changed("key-prefix") {
		opts.KeyPrefix = keyPrefix
	}
	if flags.Changed("link-cell") {
		opts.LinkCell = linkCell
	}
	if flags.Changed("skip-missing-summary") {
		opts.SkipMissingSummary = skipMissingSummary
	}

	return opts, opts.Validate()
}

func newLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch logFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", logFormat)
	}
}

func writeReport(stdout io.Writer, report *models.Report, format output.Format) error {
	data, err := output.Encode(report, format, pretty)
	if err != nil {
		return err
	}
	if reportPath == "-" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	return os.WriteFile(reportPath, data, 0644)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(16)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// renderSummary formats the end-of-run summary shown on the terminal.
func renderSummary(r *models.Report) string {
	line := func(label string, value interface{}) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), fmt.Sprint(value)) + "\n"
	}

	s := titleStyle.Render("Merged "+r.Output) + "\n"
	s += line("inputs", len(r.Inputs))
	s += line("sheets copied", len(r.Sheets))
	s += line("summary rows", r.SummaryRows)
	s += line("duplicates", r.DuplicateRows)
	s += line("links", r.Links)
	if n := len(r.MissingLinks) + len(r.LinkErrors); n > 0 {
		s += warnStyle.Render(fmt.Sprintf("%d summary rows without a link", n)) + "\n"
	}
	return s
}
