package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/observ"
	"quill/internal/project"
	"quill/internal/source"
	"quill/internal/ui"
	"quill/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Check text files for style issues",
	Long:  `Check plain-text files (or standard input when no path is given) for style issues. Directories are scanned recursively for .txt and .md files.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().Bool("progress", false, "show an interactive progress view for multi-file runs")
	checkCmd.Flags().Bool("show-context", false, "print the text surrounding each issue")
	checkCmd.Flags().Bool("show-source", false, "print the offending line with an underline")
	checkCmd.Flags().Bool("notes", false, "include secondary notes in output")
	checkCmd.Flags().Int("max-words", 0, "sentence length threshold (0=config or default)")
	checkCmd.Flags().StringSlice("disable", nil, "rule tags to turn off (repeatable)")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := buildRunOptions(cmd)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	colored, err := useColor(cmd)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	out := cmd.OutOrStdout()

	var fileSet *source.FileSet
	var results []driver.FileResult
	if len(args) == 0 {
		fileSet = source.NewFileSet()
		res, err := driver.CheckStdin(fileSet, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: failed to read stdin: %v\n", err)
			return exitSilently(cmd)
		}
		results = []driver.FileResult{res}
	} else {
		fileSet, results, err = runOverPaths(cmd, args, opts)
		if err != nil {
			return err
		}
	}

	merged := diag.NewBag(opts.Checker.MaxIssues * max(len(results), 1))
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	merged.Sort()

	switch format {
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeContext:   true,
			IncludeNotes:     true,
			PathMode:         pathMode(cmd),
		}
		if err := diagfmt.JSON(out, merged, fileSet, jsonOpts); err != nil {
			return err
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:       "quill",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		}
		if err := diagfmt.Sarif(out, merged, fileSet, meta); err != nil {
			return err
		}
	default:
		showContext, _ := cmd.Flags().GetBool("show-context")
		showSource, _ := cmd.Flags().GetBool("show-source")
		showNotes, _ := cmd.Flags().GetBool("notes")
		diagfmt.Pretty(out, merged, fileSet, diagfmt.PrettyOpts{
			Color:       colored,
			PathMode:    pathMode(cmd),
			ShowSource:  showSource,
			ShowContext: showContext,
			ShowNotes:   showNotes,
		})
	}

	if showTimings {
		for _, res := range results {
			if rep := observ.FormatReport(res.Timing); rep != "" {
				fmt.Fprintf(out, "%s:\n%s", res.Path, rep)
			}
		}
	}

	if merged.Len() > 0 {
		if format == "" || format == "pretty" {
			fmt.Fprintf(out, "Found %d issue(s).\n", merged.Len())
		}
		return exitSilently(cmd)
	}
	if !quiet && (format == "" || format == "pretty") {
		fmt.Fprintln(out, "No issues found.")
	}
	return nil
}

// buildRunOptions merges quill.toml (if present) with the command flags;
// flags win.
func buildRunOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.DefaultOptions()

	wd, err := os.Getwd()
	if err != nil {
		return opts, err
	}
	manifest, found, err := project.Discover(wd)
	if err != nil {
		return opts, err
	}
	if found {
		opts.Checker = manifest.Config.CheckerOptions()
	}

	if maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues"); err == nil && cmd.Root().PersistentFlags().Changed("max-issues") {
		opts.Checker.MaxIssues = maxIssues
	}
	if maxWords, err := cmd.Flags().GetInt("max-words"); err == nil && maxWords > 0 {
		opts.Checker.Params.MaxSentenceWords = maxWords
	}

	tags, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return opts, fmt.Errorf("failed to get disable flag: %w", err)
	}
	for _, tag := range tags {
		code, ok := diag.CodeForTag(tag)
		if !ok {
			return opts, fmt.Errorf("unknown rule tag %q (see 'quill rules')", tag)
		}
		if opts.Checker.Disabled == nil {
			opts.Checker.Disabled = make(map[diag.Code]bool)
		}
		opts.Checker.Disabled[code] = true
	}

	opts.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	opts.NoCache, err = cmd.Flags().GetBool("no-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	opts.Timings, err = cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return opts, nil
}

// runOverPaths checks the named files and directories, with the optional
// interactive progress view when checking more than one file on a terminal.
func runOverPaths(cmd *cobra.Command, args []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	var cache *driver.DiskCache
	if !opts.NoCache {
		// a broken cache dir only costs rechecking
		cache, _ = driver.OpenDiskCache("quill")
	}

	wantProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get progress flag: %w", err)
	}

	files, err := driver.ExpandPaths(args)
	if err != nil {
		return nil, nil, err
	}

	if !wantProgress || len(files) < 2 || !isTerminal(os.Stdout) {
		return driver.CheckPaths(cmd.Context(), files, cache, opts)
	}

	events := make(chan driver.Event, len(files))
	opts.Progress = func(ev driver.Event) { events <- ev }

	type runOutcome struct {
		fileSet *source.FileSet
		results []driver.FileResult
		err     error
	}
	outcome := make(chan runOutcome, 1)
	go func() {
		fileSet, results, err := driver.CheckPaths(cmd.Context(), files, cache, opts)
		close(events)
		outcome <- runOutcome{fileSet, results, err}
	}()

	model := ui.NewProgressModel("checking", files, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		// drain so the run can finish even if the view died
		for range events {
		}
	}

	res := <-outcome
	return res.fileSet, res.results, res.err
}

func resolveFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		wd, errWd := os.Getwd()
		if errWd == nil {
			if manifest, found, errCfg := project.Discover(wd); errCfg == nil && found {
				format = manifest.Config.Output.Format
			}
		}
	}
	switch format {
	case "", "pretty", "json", "sarif":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be pretty, json, or sarif)", format)
	}
}

func pathMode(cmd *cobra.Command) diagfmt.PathMode {
	if full, err := cmd.Flags().GetBool("fullpath"); err == nil && full {
		return diagfmt.PathModeAbsolute
	}
	return diagfmt.PathModeAuto
}

// exitSilently marks the command as failed without re-printing anything.
func exitSilently(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return errIssuesFound
}
