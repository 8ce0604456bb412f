package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/runner"
	"github.com/roach88/crkortho/internal/store"
	"github.com/roach88/crkortho/internal/transcode"
)

// SROToSyllabicsOptions holds flags for the sro2syllabics command.
type SROToSyllabicsOptions struct {
	*RootOptions
	Sandhi   bool
	NoSandhi bool
	Hyphens  string
	Database string
}

// NewSROToSyllabicsCommand creates the sro2syllabics command.
func NewSROToSyllabicsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SROToSyllabicsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sro2syllabics [file|-]",
		Short: "Convert SRO text to syllabics",
		Long: `Convert Cree words written in Standard Roman Orthography to syllabics.

Input is read from the named file, or from stdin when the file is "-" or
omitted. Every line is written back with its own line terminator.

Hyphens joining morphemes are replaced by a narrow no-break space (U+202F)
unless --hyphens or the config file says otherwise. Sandhi, which joins a
morpheme-final consonant to a following vowel across a hyphen, is on by
default.

Exit codes:
  0 - Input converted
  1 - Conversion failed
  2 - Command error (input not found, bad config, etc.)

Examples:
  crkortho sro2syllabics story.txt
  echo "tânisi" | crkortho sro2syllabics
  crkortho sro2syllabics --no-sandhi --hyphens "-" story.txt
  crkortho sro2syllabics --db ./journal.db story.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSROToSyllabics(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Sandhi, "sandhi", "s", false, "apply sandhi across hyphens (default)")
	cmd.Flags().BoolVarP(&opts.NoSandhi, "no-sandhi", "S", false, "do not apply sandhi")
	cmd.MarkFlagsMutuallyExclusive("sandhi", "no-sandhi")
	cmd.Flags().StringVar(&opts.Hyphens, "hyphens", transcode.DefaultHyphens, "replacement for hyphens between morphemes")
	cmd.Flags().StringVar(&opts.Database, "db", "", "journal every converted line to this SQLite database")

	return cmd
}

// encodeOptions merges the config file with flags given on the command line.
func (o *SROToSyllabicsOptions) encodeOptions(cmd *cobra.Command) (transcode.EncodeOptions, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return transcode.EncodeOptions{}, err
	}
	enc := cfg.EncodeOptions()

	switch {
	case o.Sandhi:
		enc.Sandhi = true
	case o.NoSandhi:
		enc.Sandhi = false
	}
	if cmd.Flags().Changed("hyphens") {
		enc.Hyphens = o.Hyphens
	}
	return enc, nil
}

func runSROToSyllabics(opts *SROToSyllabicsOptions, cmd *cobra.Command, args []string) error {
	enc, err := opts.encodeOptions(cmd)
	if err != nil {
		opts.formatter(cmd).ReportError(ErrCodeConfig, err)
		return err
	}

	return runConversion(cmd, opts.RootOptions, opts.Database, args, conversion{
		direction: store.DirectionSROToSyllabics,
		options:   store.Options{Hyphens: enc.Hyphens, Sandhi: enc.Sandhi},
		converter: runner.ConverterFunc(func(line string) (string, error) {
			return transcode.SROToSyllabics(line, enc)
		}),
	})
}
