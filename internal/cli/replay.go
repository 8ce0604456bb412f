package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/store"
	"github.com/roach88/crkortho/internal/transcode"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	Session  string // optional - specific session only
}

// ReplayResult is the JSON payload of the replay command.
type ReplayResult struct {
	Sessions      int              `json:"sessions"`
	Checked       int              `json:"checked"`
	Deterministic bool             `json:"deterministic"`
	Mismatches    []store.Mismatch `json:"mismatches"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-run journalled conversions and verify determinism",
		Long: `Re-run every conversion recorded in a journal database with the options it
was recorded with, and check that each output is reproduced exactly.

Exit codes:
  0 - Every output reproduced
  1 - At least one output differs
  2 - Command error (database not found, etc.)

Examples:
  crkortho replay --db ./journal.db
  crkortho replay --db ./journal.db --session 0192a5c4-...
  crkortho replay --db ./journal.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Session, "session", "", "replay specific session only")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	// store.Open would create a missing file.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		f.ReportError(ErrCodeDatabase, err)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	replayed, err := st.Replay(cmd.Context(), opts.Session, reconvert)
	if err != nil {
		f.ReportError(ErrCodeDatabase, err)
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	result := ReplayResult{
		Sessions:      replayed.Sessions,
		Checked:       replayed.Checked,
		Deterministic: replayed.Deterministic(),
		Mismatches:    replayed.Mismatches,
	}

	if opts.Format == "json" {
		return outputReplayJSON(f, result)
	}
	return outputReplayText(cmd, result, opts.Verbose)
}

// reconvert converts a journalled input again with its recorded options.
func reconvert(c store.Conversion) (string, error) {
	switch c.Direction {
	case store.DirectionSROToSyllabics:
		return transcode.SROToSyllabics(c.Input, transcode.EncodeOptions{
			Hyphens: c.Options.Hyphens,
			Sandhi:  c.Options.Sandhi,
		})
	case store.DirectionSyllabicsToSRO:
		return transcode.SyllabicsToSRO(c.Input, transcode.DecodeOptions{Macrons: c.Options.Macrons}), nil
	default:
		return "", fmt.Errorf("unknown direction %q", c.Direction)
	}
}

func outputReplayJSON(f *OutputFormatter, result ReplayResult) error {
	resp := CLIResponse{Status: "ok", Data: result}
	if !result.Deterministic {
		resp.Status = "error"
		resp.Error = &CLIError{
			Code:    ErrCodeDeterminism,
			Message: "determinism verification failed",
		}
	}
	if err := f.Response(resp); err != nil {
		return err
	}

	if !result.Deterministic {
		return NewExitError(ExitFailure, "determinism verification failed")
	}
	return nil
}

func outputReplayText(cmd *cobra.Command, result ReplayResult, verbose bool) error {
	w := cmd.OutOrStdout()

	if result.Checked == 0 {
		fmt.Fprintln(w, "No conversions found in database.")
		return nil
	}

	fmt.Fprintf(w, "Replay Summary: %d conversion(s) in %d session(s)\n", result.Checked, result.Sessions)

	for _, m := range result.Mismatches {
		fmt.Fprintf(w, "✗ session %s seq %d (%s)\n", m.Conversion.Session, m.Conversion.Seq, m.Conversion.Direction)
		if verbose {
			fmt.Fprintf(w, "  input:    %q\n", m.Conversion.Input)
		}
		fmt.Fprintf(w, "  recorded: %q\n", m.Conversion.Output)
		fmt.Fprintf(w, "  replayed: %q\n", m.Got)
	}

	if result.Deterministic {
		fmt.Fprintln(w, "✓ All conversions reproduced")
		return nil
	}

	fmt.Fprintf(w, "✗ %d of %d conversion(s) differ\n", len(result.Mismatches), result.Checked)
	return NewExitError(ExitFailure, "determinism verification failed")
}
