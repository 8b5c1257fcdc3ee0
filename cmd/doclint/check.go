package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"doclint/internal/diagfmt"
	"doclint/internal/engine"
	"doclint/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <batch|directory>",
	Short: "Check documentation comments in one batch file or a directory of batches",
	Long:  `Check runs every documentation rule over pre-parsed declaration batches (.json, .yaml, .mp) produced by a host frontend`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json|short); overrides doclint.toml")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warning findings")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warning findings as errors")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("ui", false, "show interactive progress while checking")
	checkCmd.Flags().String("config", "", "path to doclint.toml (default: nearest ancestor)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	startDir := target
	if !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, err := loadToolConfig(configPath, startDir)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	var paths []string
	if st.IsDir() {
		paths, err = engine.ListBatches(target)
		if err != nil {
			return fmt.Errorf("failed to scan %q: %w", target, err)
		}
		if len(paths) == 0 {
			if !quiet {
				fmt.Fprintf(os.Stdout, "no batch files under %s\n", target)
			}
			return nil
		}
	} else {
		paths = []string{target}
	}

	runner := &engine.Runner{
		Set: rules.NewSet(cfg.ruleConfig()),
		Opts: engine.Options{
			Jobs:             jobs,
			MaxDiagnostics:   maxDiagnostics,
			IgnoreWarnings:   noWarnings,
			WarningsAsErrors: warningsAsErrors,
		},
	}

	var results []engine.Result
	if useUI && isTerminal(os.Stdout) {
		results, err = runCheckWithUI(cmd.Context(), "checking documentation", paths, runner)
	} else {
		results, err = runner.Check(cmd.Context(), paths)
	}
	if err != nil {
		return err
	}

	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	exitCode := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			exitCode = 1
			break
		}
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:     colored,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		for idx, r := range results {
			if idx > 0 {
				fmt.Fprintln(os.Stdout)
			}
			if len(results) > 1 && !quiet {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			diagfmt.Pretty(os.Stdout, r.Bag, r.Files, opts)
		}
	case "short":
		for _, r := range results {
			diagfmt.Short(os.Stdout, r.Bag, r.Files, withNotes)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, r.Files, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	}

	if showTimings && !quiet {
		for _, r := range results {
			fmt.Fprintf(os.Stderr, "%s %s", r.Path, r.Timing.Summary())
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
