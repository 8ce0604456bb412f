package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/crkortho/internal/transcode"
)

// Run checks every case of a corpus and returns the result.
// Failed checks are reported in the result; an error is only returned when
// a conversion itself fails.
func Run(corpus *Corpus) (*Result, error) {
	result := NewResult(corpus.Name)

	for i, tc := range corpus.Cases {
		for _, dir := range tc.directions() {
			check := Check{Case: i, Direction: dir}

			switch dir {
			case DirectionSROToSyllabics:
				check.Input, check.Want = tc.SRO, tc.Syllabics
				got, err := transcode.SROToSyllabics(tc.SRO, tc.EncodeOptions())
				if err != nil {
					return nil, fmt.Errorf("%s: cases[%d]: %w", corpus.Name, i, err)
				}
				check.Got = got
			case DirectionSyllabicsToSRO:
				check.Input, check.Want = tc.Syllabics, tc.SRO
				check.Got = transcode.SyllabicsToSRO(tc.Syllabics, tc.DecodeOptions())
			}

			check.Pass = check.Got == check.Want
			if !check.Pass {
				result.AddError(fmt.Sprintf("cases[%d] %s: %q: got %q, want %q",
					i, dir, check.Input, check.Got, check.Want))
			}
			result.Checks = append(result.Checks, check)
		}
	}

	slog.Debug("corpus finished",
		"corpus", corpus.Name,
		"checks", len(result.Checks),
		"failures", len(result.Errors),
	)
	return result, nil
}
