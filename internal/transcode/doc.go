// Package transcode converts Cree text between Standard Roman Orthography
// (SRO) and Canadian Aboriginal Syllabics.
//
// The two directions are deliberately asymmetric:
//
//   - SRO to syllabics is a segmentation problem. Word spans are located with
//     a phonotactic grammar, canonicalised (NFC, lowercase, variant vowels),
//     then split into syllables by a greedy longest-match scanner that also
//     applies the sandhi rule across hyphens and merges a word-final h+k.
//   - Syllabics to SRO is a per-character map. Runs of syllabics are found,
//     w-dots are composed, and each character is looked up in the inverse
//     symbol table.
//
// Text outside recognised spans is copied through unchanged, apart from the
// NFC normalisation applied to all input.
//
// Every function here is pure: there is no state between calls and the only
// shared data is the immutable table from package syllabary, so all of them
// are safe for concurrent use.
package transcode
