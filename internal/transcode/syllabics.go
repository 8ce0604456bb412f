package transcode

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/roach88/crkortho/internal/syllabary"
)

// FindSyllabicsRuns returns the maximal runs of syllabics in text. Two runs
// separated by a single narrow no-break space form one run, since that space
// is how morpheme joins are written in syllabics.
func FindSyllabicsRuns(text string) []Span {
	var spans []Span
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !syllabary.IsSyllabic(r) {
			i += size
			continue
		}
		start := i
		i += size
		for i < len(text) {
			next, nsize := utf8.DecodeRuneInString(text[i:])
			if syllabary.IsSyllabic(next) {
				i += nsize
				continue
			}
			if next == syllabary.NarrowNoBreakSpace && i+nsize < len(text) {
				after, _ := utf8.DecodeRuneInString(text[i+nsize:])
				if syllabary.IsSyllabic(after) {
					i += nsize
					continue
				}
			}
			break
		}
		spans = append(spans, Span{Start: start, End: i})
	}
	return spans
}

// ComposeWDots replaces each base syllabic followed by FINAL MIDDLE DOT with
// the precomposed w-syllabic. A dot that follows anything else is kept.
func ComposeWDots(run string) string {
	return composeWDots(syllabary.Default(), run)
}

func composeWDots(table *syllabary.Table, run string) string {
	if !strings.ContainsRune(run, syllabary.FinalMiddleDot) {
		return run
	}
	runes := []rune(run)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && runes[i+1] == syllabary.FinalMiddleDot {
			if dotted, ok := table.WDotted(runes[i]); ok {
				out = append(out, dotted)
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return string(out)
}

// decodeRun maps one syllabics run to SRO, a character at a time.
func decodeRun(table *syllabary.Table, run string) string {
	var b strings.Builder
	for _, r := range composeWDots(table, run) {
		if r == syllabary.NarrowNoBreakSpace {
			b.WriteByte('-')
			continue
		}
		sro, err := table.Backward(r)
		if err != nil {
			slog.Debug("passing through unknown syllabic", "rune", fmt.Sprintf("%U", r))
			b.WriteRune(r)
			continue
		}
		b.WriteString(sro)
	}
	return b.String()
}
