package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // corpus file filter (glob pattern)
	Golden string // golden snapshot directory
	Update bool   // regenerate golden files
}

// CorpusResult holds the result of a single corpus.
type CorpusResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Checks int      `json:"checks"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Corpora []CorpusResult `json:"corpora"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Total   int            `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <corpus-dir>",
		Short: "Run conversion corpora",
		Long: `Run every YAML conversion corpus in a directory.

Each case pairs an SRO text with its syllabics and is converted in one or
both directions. With --golden, the outputs of each corpus are also compared
against <golden>/<name>.golden; --update rewrites those files instead.

Exit codes:
  0 - All corpora passed
  1 - One or more corpora failed
  2 - Command error (invalid paths, malformed corpus, etc.)

Examples:
  crkortho test ./corpus
  crkortho test ./corpus --filter "hyphen*"
  crkortho test ./corpus --golden ./golden --update
  crkortho test ./corpus --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter corpus files by glob pattern")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden snapshots")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")

	return cmd
}

func runTests(opts *TestOptions, corpusDir string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	if _, err := os.Stat(corpusDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("corpus directory not found: %s", corpusDir))
	}
	if opts.Update && opts.Golden == "" {
		return NewExitError(ExitCommandError, "--update requires --golden")
	}

	corpora, err := harness.LoadCorpora(corpusDir, opts.Filter)
	if err != nil {
		f.ReportError(ErrCodeCorpus, err)
		return WrapExitError(ExitCommandError, "failed to load corpora", err)
	}

	if len(corpora) == 0 {
		if opts.Format == "json" {
			return f.Success(TestResult{Corpora: []CorpusResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No corpora found.")
		return nil
	}

	result := TestResult{
		Corpora: make([]CorpusResult, 0, len(corpora)),
		Total:   len(corpora),
	}
	for _, corpus := range corpora {
		f.VerboseLog("running %s (%d cases)", corpus.Name, len(corpus.Cases))

		cr := runCorpus(corpus, opts)
		result.Corpora = append(result.Corpora, cr)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(f, result)
	}
	return outputTestText(cmd, result, opts.Update)
}

// runCorpus runs one corpus and, when a golden directory is set, checks or
// rewrites its snapshot.
func runCorpus(corpus *harness.Corpus, opts *TestOptions) CorpusResult {
	result, err := harness.Run(corpus)
	if err != nil {
		return CorpusResult{
			Name:   corpus.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	cr := CorpusResult{
		Name:   corpus.Name,
		Pass:   result.Pass,
		Checks: len(result.Checks),
		Errors: result.Errors,
	}
	if opts.Golden == "" {
		return cr
	}

	path := goldenFilePath(opts.Golden, corpus.Name)
	snapshot := harness.Snapshot(result)

	if opts.Update {
		if err := writeGoldenFile(path, snapshot); err != nil {
			cr.Pass = false
			cr.Errors = append(cr.Errors, err.Error())
		}
		return cr
	}

	want, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No snapshot yet; the case expectations alone decide.
	case err != nil:
		cr.Pass = false
		cr.Errors = append(cr.Errors, fmt.Sprintf("failed to read golden file: %v", err))
	case !bytes.Equal(want, snapshot):
		cr.Pass = false
		cr.Errors = append(cr.Errors, "output does not match golden file (run with --update to regenerate)")
	}
	return cr
}

// goldenFilePath returns the snapshot path for a corpus.
func goldenFilePath(dir, name string) string {
	return filepath.Join(dir, name+".golden")
}

func writeGoldenFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

func outputTestJSON(f *OutputFormatter, result TestResult) error {
	resp := CLIResponse{Status: "ok", Data: result}
	if result.Failed > 0 {
		resp.Status = "error"
		resp.Error = &CLIError{
			Code:    ErrCodeCorpus,
			Message: fmt.Sprintf("%d of %d corpora failed", result.Failed, result.Total),
		}
	}
	if err := f.Response(resp); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, resp.Error.Message)
	}
	return nil
}

func outputTestText(cmd *cobra.Command, result TestResult, updated bool) error {
	w := cmd.OutOrStdout()

	for _, c := range result.Corpora {
		if c.Pass {
			suffix := ""
			if updated {
				suffix = ", golden updated"
			}
			fmt.Fprintf(w, "✓ %s (%d checks%s)\n", c.Name, c.Checks, suffix)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", c.Name)
		for _, e := range c.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d corpora failed", result.Failed, result.Total))
	}
	return nil
}
