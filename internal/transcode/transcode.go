package transcode

import (
	"strings"

	"github.com/roach88/crkortho/internal/syllabary"
)

// DefaultHyphens is the default replacement for hyphens in syllabics.
// A narrow no-break space keeps morphemes visibly apart without looking like
// a word break.
const DefaultHyphens = string(syllabary.NarrowNoBreakSpace)

// EncodeOptions configures SRO to syllabics conversion.
type EncodeOptions struct {
	// Hyphens replaces each hyphen that is not absorbed by sandhi.
	// Any string is accepted, including the empty string.
	Hyphens string

	// Sandhi joins a morpheme-final consonant to the next morpheme's
	// initial vowel across a hyphen.
	Sandhi bool
}

// DefaultEncodeOptions returns NNBSP hyphens with sandhi enabled.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Hyphens: DefaultHyphens, Sandhi: true}
}

// DecodeOptions configures syllabics to SRO conversion.
type DecodeOptions struct {
	// Macrons writes long vowels as āēīō instead of âêîô.
	Macrons bool
}

// SROToSyllabics converts every Cree word written in SRO within text to
// syllabics, then converts periods that follow syllabics into syllabics full
// stops. Other text is copied through.
//
// An error is only returned when a span accepted by the word grammar cannot
// be segmented, which indicates a defect in the grammar or symbol table.
func SROToSyllabics(text string, opts EncodeOptions) (string, error) {
	table := syllabary.Default()
	text = nfc(text)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range FindWords(text) {
		b.WriteString(text[last:span.Start])
		parts, err := segment(table, CanonicalizeWord(text[span.Start:span.End]), opts)
		if err != nil {
			return "", err
		}
		b.WriteString(joinSyllabics(parts))
		last = span.End
	}
	b.WriteString(text[last:])

	return convertFullStops(b.String()), nil
}

// SyllabicsToSRO converts every run of syllabics within text to SRO.
// Morpheme joins written as narrow no-break spaces become hyphens, whatever
// replacement was used when the text was encoded. Characters without an SRO
// equivalent are copied through.
func SyllabicsToSRO(text string, opts DecodeOptions) string {
	table := syllabary.Default()
	text = nfc(text)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range FindSyllabicsRuns(text) {
		b.WriteString(text[last:span.Start])
		sro := decodeRun(table, text[span.Start:span.End])
		// Macrons only rewrite decoded runs; â in surrounding text is kept.
		if opts.Macrons {
			sro = ToMacrons(sro)
		}
		b.WriteString(sro)
		last = span.End
	}
	b.WriteString(text[last:])
	return b.String()
}
