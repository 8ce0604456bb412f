package transcode

import (
	"strings"
	"unicode/utf8"

	"github.com/roach88/crkortho/internal/syllabary"
)

// Segment is one unit emitted by the segmenter: an SRO syllable and the
// syllabics that replace it. A morpheme-joining hyphen is emitted as
// Segment{SRO: "-", Syllabics: <hyphen replacement>}.
type Segment struct {
	SRO       string `json:"sro"`
	Syllabics string `json:"syllabics"`
}

// sandhiOnsets are the consonants that can resyllabify across a hyphen.
const sandhiOnsets = "ptkcshmnyw"

// SegmentWord canonicalises an SRO word and splits it into segments.
// The word should be a span accepted by FindWords; anything else may fail
// with ErrCodeUnsegmentableWord.
func SegmentWord(word string, opts EncodeOptions) ([]Segment, error) {
	return segment(syllabary.Default(), CanonicalizeWord(word), opts)
}

// segment scans a canonical word left to right. At each position it tries,
// in order, the sandhi production, a literal hyphen and the longest plain
// syllable.
func segment(table *syllabary.Table, word string, opts EncodeOptions) ([]Segment, error) {
	var parts []Segment
	rest := word

	for rest != "" {
		if onset, vowel, n, ok := matchSandhi(rest); ok {
			if opts.Sandhi {
				fused, ok := fuse(table, onset+vowel)
				if !ok {
					break
				}
				parts = append(parts, fused...)
				rest = rest[n:]
				continue
			}
			// Without sandhi the first consonant stands alone; the hyphen is
			// picked up as a literal on a later step.
			syllabic, err := table.Forward(onset[:1])
			if err != nil {
				break
			}
			parts = append(parts, Segment{SRO: onset[:1], Syllabics: string(syllabic)})
			rest = rest[1:]
			continue
		}

		if rest[0] == '-' {
			parts = append(parts, Segment{SRO: "-", Syllabics: opts.Hyphens})
			rest = rest[1:]
			continue
		}

		syllable, syllabic, ok := table.LongestMatch(rest)
		if !ok {
			break
		}
		parts = append(parts, Segment{SRO: syllable, Syllabics: string(syllabic)})
		rest = rest[len(syllable):]
	}

	if rest != "" {
		return nil, newUnsegmentableError(word, rest)
	}
	return mergeFinalHK(table, parts), nil
}

// matchSandhi matches consonant, optional w, hyphen, vowel at the start of s.
// n is the byte length of the match.
func matchSandhi(s string) (onset, vowel string, n int, ok bool) {
	if len(s) < 3 || strings.IndexByte(sandhiOnsets, s[0]) < 0 {
		return "", "", 0, false
	}
	i := 1
	if s[i] == 'w' {
		i++
	}
	if i >= len(s) || s[i] != '-' {
		return "", "", 0, false
	}
	v, size := utf8.DecodeRuneInString(s[i+1:])
	if !isCanonicalVowel(v) {
		return "", "", 0, false
	}
	return s[:i], string(v), i + 1 + size, true
}

func isCanonicalVowel(r rune) bool {
	switch r {
	case 'ê', 'i', 'î', 'o', 'ô', 'a', 'â':
		return true
	}
	return false
}

// fuse segments an onset joined to the following morpheme's vowel. Most
// fusions are a single syllable; those missing from the inventory ("ha",
// "nwi") are segmented as if the hyphen had never been written.
func fuse(table *syllabary.Table, s string) ([]Segment, bool) {
	if syllabic, err := table.Forward(s); err == nil {
		return []Segment{{SRO: s, Syllabics: string(syllabic)}}, true
	}

	var out []Segment
	for s != "" {
		syllable, syllabic, ok := table.LongestMatch(s)
		if !ok {
			return nil, false
		}
		out = append(out, Segment{SRO: syllable, Syllabics: string(syllabic)})
		s = s[len(syllable):]
	}
	return out, true
}

// mergeFinalHK replaces a word-final h, k pair with the single hk syllabic.
// It only looks at the end of the finished word: a medial h+k, as in
// -ihkwê-, must stay as two syllabics.
func mergeFinalHK(table *syllabary.Table, parts []Segment) []Segment {
	n := len(parts)
	if n < 2 {
		return parts
	}
	h, _ := table.Forward("h")
	k, _ := table.Forward("k")
	if parts[n-2].Syllabics != string(h) || parts[n-1].Syllabics != string(k) {
		return parts
	}
	hk, _ := table.Forward("hk")
	return append(parts[:n-2], Segment{SRO: "hk", Syllabics: string(hk)})
}

func joinSyllabics(parts []Segment) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Syllabics)
	}
	return b.String()
}
