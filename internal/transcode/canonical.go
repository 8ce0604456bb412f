package transcode

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// variantForms maps macron vowels, the unaccented e and the apostrophe onto
// the circumflex forms used by the symbol table. The apostrophe stands for an
// elided short i.
var variantForms = strings.NewReplacer(
	"e", "ê",
	"ē", "ê",
	"ī", "î",
	"ō", "ô",
	"ā", "â",
	"'", "i",
)

// CanonicalizeWord returns the form of an SRO word used for segmentation.
// The result is NFC, lowercase and uses only circumflex long vowels.
// The mapping is lossy and is never applied to output.
func CanonicalizeWord(word string) string {
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(language.Und).String(nfc(word))
	return variantForms.Replace(lower)
}

// nfc composes combining marks with their base letters, so that decomposed
// input matches composed input.
func nfc(text string) string {
	return norm.NFC.String(text)
}
