// Package main provides the CLI entry point for rentsheet.
package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ukaji3/rentsheet/internal/config"
	"github.com/ukaji3/rentsheet/internal/logging"
	"github.com/ukaji3/rentsheet/pkg/rentsheet"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/output"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/summary"
)

var (
	configPath  string
	envFile     string
	outputPath  string
	format      string
	sheet       string
	pretty      bool
	showSummary bool
	logLevel    string
	logJSON     bool
	noColor     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentsheet [input.xlsx]",
		Short: "Convert a rental listings workbook to JSON",
		Long: `rentsheet reads the listings sheet of an Excel workbook, cleans every
row (phone numbers, dates, amounts, equipment) and writes a JSON array
ready for the dashboard.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout (default: input name with the format extension)")
	cmd.Flags().StringVar(&format, "format", config.FormatJSON, "Output format: json or csv")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read (default: active sheet)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a summary of the exported listings")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Environment file (default: .env when present)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored logs")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	applyFlags(cmd, cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Writer: cmd.ErrOrStderr(),
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Color:  cfg.Log.Color,
	})

	// Convert data
	result, err := rentsheet.Convert(cfg.Input, rentsheet.Options{
		Sheet:  cfg.Sheet,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	// Serialize
	var data []byte
	switch cfg.Format {
	case config.FormatCSV:
		data, err = output.ToCSV(result.Listings)
	default:
		data, err = output.ToJSON(result.Listings, cfg.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	dest := cfg.OutputPath()
	status := cmd.OutOrStdout()
	if dest == config.Stdout {
		if _, err := status.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		status = cmd.ErrOrStderr()
	} else if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printStatus(status, result, cfg.Format, dest)
	if showSummary {
		printSummary(status, summary.Summarize(result.Listings))
	}
	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = logJSON
	}
	if noColor {
		cfg.Log.Color = false
	}
}

func printStatus(w io.Writer, result *models.Result, format, dest string) {
	label := "JSON"
	if format == config.FormatCSV {
		label = "CSV"
	}
	if dest == config.Stdout {
		dest = "(stdout)"
	}
	fmt.Fprintln(w, "✅ Conversion terminée !")
	fmt.Fprintf(w, "📊 %d appartements exportés\n", len(result.Listings))
	fmt.Fprintf(w, "📁 Fichier %s : %s\n", label, dest)
}

func printSummary(w io.Writer, s summary.Summary) {
	fmt.Fprintf(w, "\n%d annonces dont %d meublées\n", s.Total, s.Furnished)
	for _, t := range []string{"Studio", "T2", "T3", "T4", "T5+"} {
		if n := s.ByType[t]; n > 0 {
			fmt.Fprintf(w, "  %-6s %d\n", t, n)
		}
	}
	for _, etat := range slices.Sorted(maps.Keys(s.ByEtat)) {
		fmt.Fprintf(w, "  %s : %d\n", etat, s.ByEtat[etat])
	}
	if s.Loyer.Count > 0 {
		fmt.Fprintf(w, "Loyer : moyen %.2f, médian %.2f (min %.2f, max %.2f)\n",
			s.Loyer.Mean, s.Loyer.Median, s.Loyer.Min, s.Loyer.Max)
	}
	if s.Surface.Count > 0 {
		fmt.Fprintf(w, "Surface : moyenne %.2f m², médiane %.2f m²\n", s.Surface.Mean, s.Surface.Median)
	}
	if s.LoyerPerM2 > 0 {
		fmt.Fprintf(w, "Loyer moyen au m² : %.2f\n", s.LoyerPerM2)
	}
}
