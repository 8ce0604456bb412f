package transcode

import (
	"strings"
	"unicode/utf8"

	"github.com/roach88/crkortho/internal/syllabary"
)

var circumflexToMacron = strings.NewReplacer(
	"â", "ā",
	"ê", "ē",
	"î", "ī",
	"ô", "ō",
)

// ToMacrons rewrites circumflex long vowels (âêîô) as macrons (āēīō).
func ToMacrons(sro string) string {
	return circumflexToMacron.Replace(sro)
}

// convertFullStops turns a Latin period into the syllabics full stop when it
// immediately follows a syllabic, or when it is the entire text. Periods in
// other text ("Dr.") are left alone.
func convertFullStops(text string) string {
	if text == "." {
		return string(syllabary.FullStop)
	}
	if strings.IndexByte(text, '.') < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' || i == 0 {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if !syllabary.IsSyllabic(prev) {
			continue
		}
		b.WriteString(text[last:i])
		b.WriteRune(syllabary.FullStop)
		last = i + 1
	}
	b.WriteString(text[last:])
	return b.String()
}
