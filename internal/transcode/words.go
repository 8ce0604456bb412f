package transcode

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) within a string.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// The word grammar is a simplification of Plains Cree phonotactics:
//
//	WORD      := SYLLABLES ( CODA? '-' SYLLABLES )*
//	SYLLABLES := SYLLABLE+
//	SYLLABLE  := ONSET? VOWEL CODA? | 'r' | 'l'
//
// It over-approximates so that loanwords spelled with Cree letters ("tireyl")
// are accepted while clusters such as "tr" are not. Letters are matched in
// both cases with explicit classes; Unicode case folding would admit letters
// like U+017F that the segmenter cannot cover.
const (
	grammarVowel = `[êioaîôâeēīōā'ÊIOAÎÔÂEĒĪŌĀ]`
	grammarOnset = `(?:[tT][hH]|[wW]|[ptkcshmnyPTKCSHMNY][wW]?)`
	grammarCoda  = `(?:[tT][hH]|[hsHS]?[ptkcmnPTKCMN]|[hsywHSYW])`

	grammarSyllable  = `(?:` + grammarOnset + `?` + grammarVowel + grammarCoda + `?|[rlRL])`
	grammarSyllables = `(?:` + grammarSyllable + `)+`
	grammarWord      = grammarSyllables + `(?:` + grammarCoda + `?-` + grammarSyllables + `)*`
)

var wordPattern = regexp.MustCompile(`^` + grammarWord + `$`)

// grammarAlphabet is every rune the grammar can consume.
const grammarAlphabet = "ptkcshmnywlrêioaîôâeēīōā" + "PTKCSHMNYWLRÊIOAÎÔÂEĒĪŌĀ" + "'-"

func inAlphabet(r rune) bool {
	return strings.ContainsRune(grammarAlphabet, r)
}

// isWordRune reports whether r would continue a word, so that a span never
// starts or ends in the middle of a larger token.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// FindWords returns the Cree word spans in text, in order.
//
// A span starts at a letter of the grammar that does not follow a word rune
// and ends where the next rune is not a word rune. A span never ends on an
// apostrophe. Of the possible ends, the longest that satisfies the grammar
// wins. Text is expected to be NFC.
func FindWords(text string) []Span {
	var spans []Span
	var prev rune
	havePrev := false

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if startsWord(r) && !(havePrev && isWordRune(prev)) {
			if end, ok := matchWord(text, i); ok {
				spans = append(spans, Span{Start: i, End: end})
				prev, _ = utf8.DecodeLastRuneInString(text[:end])
				havePrev = true
				i = end
				continue
			}
		}
		prev, havePrev = r, true
		i += size
	}
	return spans
}

func startsWord(r rune) bool {
	return r != '\'' && r != '-' && inAlphabet(r)
}

// matchWord returns the end of the longest word starting at start.
func matchWord(text string, start int) (int, bool) {
	var ends []int
	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !inAlphabet(r) {
			break
		}
		i += size
		ends = append(ends, i)
	}

	for k := len(ends) - 1; k >= 0; k-- {
		end := ends[k]
		// An apostrophe inside a word is a short i; at the end it is a
		// closing quote.
		if text[end-1] == '\'' {
			continue
		}
		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if isWordRune(next) {
				continue
			}
		}
		if wordPattern.MatchString(text[start:end]) {
			return end, true
		}
	}
	return 0, false
}
