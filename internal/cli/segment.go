package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/crkortho/internal/transcode"
)

// SegmentOptions holds flags for the segment command.
type SegmentOptions struct {
	*RootOptions
	NoSandhi bool
}

// WordSegments is the segmentation of one word.
type WordSegments struct {
	Word     string              `json:"word"`
	Segments []transcode.Segment `json:"segments"`
}

// NewSegmentCommand creates the segment command.
func NewSegmentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SegmentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "segment <word>...",
		Short: "Show how SRO words split into syllables",
		Long: `Print the syllables each SRO word is split into, with the syllabic
written for each.

Exit codes:
  0 - Every word segmented
  1 - A word has no segmentation
  2 - Command error (bad config, etc.)

Examples:
  crkortho segment acimosis
  crkortho segment --no-sandhi pîhc-âyihk
  crkortho segment --format json wâpamêw nitha`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegment(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.NoSandhi, "no-sandhi", "S", false, "do not apply sandhi")

	return cmd
}

func runSegment(opts *SegmentOptions, cmd *cobra.Command, words []string) error {
	f := opts.formatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		f.ReportError(ErrCodeConfig, err)
		return err
	}
	enc := cfg.EncodeOptions()
	if opts.NoSandhi {
		enc.Sandhi = false
	}

	results := make([]WordSegments, 0, len(words))
	for _, word := range words {
		segments, err := transcode.SegmentWord(word, enc)
		if err != nil {
			var details any
			var te *transcode.Error
			if errors.As(err, &te) {
				details = map[string]any{"word": te.Word, "remainder": te.Remainder, "offset": te.Offset}
			}
			if opts.Format == "json" {
				_ = f.Error(ErrCodeUnsegmentable, err.Error(), details)
			} else {
				f.VerboseLog("segmentation failed: %v", details)
			}
			return WrapExitError(ExitFailure, fmt.Sprintf("cannot segment %q", word), err)
		}
		results = append(results, WordSegments{Word: word, Segments: segments})
	}

	if opts.Format == "json" {
		return f.Success(results)
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		pairs := make([]string, len(r.Segments))
		for i, s := range r.Segments {
			pairs[i] = fmt.Sprintf("%s=%q", s.SRO, s.Syllabics)
		}
		fmt.Fprintf(w, "%s: %s\n", r.Word, strings.Join(pairs, " "))
	}
	return nil
}
