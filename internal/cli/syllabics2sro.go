package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/runner"
	"github.com/roach88/crkortho/internal/store"
	"github.com/roach88/crkortho/internal/transcode"
)

// SyllabicsToSROOptions holds flags for the syllabics2sro command.
type SyllabicsToSROOptions struct {
	*RootOptions
	Macrons      bool
	Circumflexes bool
	Database     string
}

// NewSyllabicsToSROCommand creates the syllabics2sro command.
func NewSyllabicsToSROCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SyllabicsToSROOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "syllabics2sro [file|-]",
		Short: "Convert syllabics to SRO text",
		Long: `Convert runs of Cree syllabics to Standard Roman Orthography.

Input is read from the named file, or from stdin when the file is "-" or
omitted. Every line is written back with its own line terminator.

Long vowels are written with circumflexes (â ê î ô) unless --macrons or the
config file asks for macrons (ā ē ī ō).

Exit codes:
  0 - Input converted
  1 - Conversion failed
  2 - Command error (input not found, bad config, etc.)

Examples:
  crkortho syllabics2sro story.txt
  echo "ᑖᓂᓯ" | crkortho syllabics2sro --macrons`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyllabicsToSRO(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Macrons, "macrons", "m", false, "write long vowels with macrons")
	cmd.Flags().BoolVarP(&opts.Circumflexes, "circumflexes", "c", false, "write long vowels with circumflexes (default)")
	cmd.MarkFlagsMutuallyExclusive("macrons", "circumflexes")
	cmd.Flags().StringVar(&opts.Database, "db", "", "journal every converted line to this SQLite database")

	return cmd
}

// decodeOptions merges the config file with flags given on the command line.
func (o *SyllabicsToSROOptions) decodeOptions() (transcode.DecodeOptions, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return transcode.DecodeOptions{}, err
	}
	dec := cfg.DecodeOptions()

	switch {
	case o.Macrons:
		dec.Macrons = true
	case o.Circumflexes:
		dec.Macrons = false
	}
	return dec, nil
}

func runSyllabicsToSRO(opts *SyllabicsToSROOptions, cmd *cobra.Command, args []string) error {
	dec, err := opts.decodeOptions()
	if err != nil {
		opts.formatter(cmd).ReportError(ErrCodeConfig, err)
		return err
	}

	return runConversion(cmd, opts.RootOptions, opts.Database, args, conversion{
		direction: store.DirectionSyllabicsToSRO,
		options:   store.Options{Macrons: dec.Macrons},
		converter: runner.ConverterFunc(func(line string) (string, error) {
			return transcode.SyllabicsToSRO(line, dec), nil
		}),
	})
}
