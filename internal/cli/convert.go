package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/runner"
	"github.com/roach88/crkortho/internal/store"
)

// conversion describes one run of a conversion command.
type conversion struct {
	direction store.Direction
	options   store.Options
	converter runner.Converter
}

// ConversionResult is the JSON payload of sro2syllabics and syllabics2sro.
type ConversionResult struct {
	Output string       `json:"output"`
	Stats  runner.Stats `json:"stats"`
}

// runConversion streams the input named by args through conv. In text mode
// converted lines are written as they are produced; in JSON mode the output
// is collected and reported once with the run statistics. With a database
// path every line is journalled.
func runConversion(cmd *cobra.Command, opts *RootOptions, database string, args []string, conv conversion) error {
	f := opts.formatter(cmd)

	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		f.ReportError(ErrCodeInput, err)
		return err
	}
	defer closeInput()

	var runOpts []runner.Option
	if database != "" {
		st, err := store.Open(database)
		if err != nil {
			f.ReportError(ErrCodeDatabase, err)
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
		runOpts = append(runOpts, runner.WithRecorder(st.Journal(conv.direction, conv.options)))
	}

	var out io.Writer = cmd.OutOrStdout()
	var collected bytes.Buffer
	if opts.Format == "json" {
		out = &collected
	}

	stats, err := runner.New(conv.converter, runOpts...).Run(cmd.Context(), in, out)
	if err != nil {
		f.ReportError(ErrCodeConversion, err)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	slog.Debug("converted input",
		"direction", conv.direction,
		"lines", stats.Lines,
		"changed", stats.Changed,
		"session", stats.Session,
	)
	if stats.Session != "" {
		f.VerboseLog("journalled %d line(s) as session %s", stats.Lines, stats.Session)
	}

	if opts.Format == "json" {
		return f.Success(ConversionResult{Output: collected.String(), Stats: stats})
	}
	return nil
}

// openInput returns the file named by args, or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, NewExitError(ExitCommandError, "input file not found: "+args[0])
		}
		return nil, nil, WrapExitError(ExitCommandError, "failed to open input", err)
	}
	return file, func() { file.Close() }, nil
}
