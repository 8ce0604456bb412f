// Package crkortho converts Plains Cree text between Standard Roman
// Orthography (SRO) and Canadian Aboriginal Syllabics.
//
// Both directions convert the Cree parts of a text and copy everything else
// through, so mixed English and Cree input is handled:
//
//	out, err := crkortho.SROToSyllabics("Eddie nitisiyihkâson.")
//	// out == "Eddie ᓂᑎᓯᔨᐦᑳᓱᐣ᙮"
//
//	crkortho.SyllabicsToSRO("ᐁᐍᐹᐲᐦᑫᐍᐱᓇᒪᕽ", crkortho.WithMacrons(true))
//	// "ēwēpāpīhkēwēpinamahk"
//
// All functions are safe for concurrent use.
package crkortho

import (
	"github.com/roach88/crkortho/internal/transcode"
)

// DefaultHyphens is the hyphen replacement used by SROToSyllabics when
// WithHyphens is not given: U+202F NARROW NO-BREAK SPACE.
const DefaultHyphens = transcode.DefaultHyphens

type options struct {
	encode transcode.EncodeOptions
	decode transcode.DecodeOptions
}

// Option configures a conversion. Options that do not apply to a direction
// are ignored by it.
type Option func(*options)

// WithHyphens sets the string that replaces each hyphen in syllabics output.
// The empty string removes hyphens.
func WithHyphens(s string) Option {
	return func(o *options) {
		o.encode.Hyphens = s
	}
}

// WithSandhi enables or disables joining a morpheme-final consonant with the
// next morpheme's initial vowel ("pîhc-âyihk" to ᐲᐦᒑᔨᕽ). Enabled by default.
func WithSandhi(enabled bool) Option {
	return func(o *options) {
		o.encode.Sandhi = enabled
	}
}

// WithMacrons makes SyllabicsToSRO write long vowels with macrons (āēīō)
// instead of circumflexes (âêîô).
func WithMacrons(enabled bool) Option {
	return func(o *options) {
		o.decode.Macrons = enabled
	}
}

func apply(opts []Option) options {
	o := options{encode: transcode.DefaultEncodeOptions()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SROToSyllabics converts the SRO words in text to syllabics.
// Accepted options: WithHyphens, WithSandhi.
func SROToSyllabics(text string, opts ...Option) (string, error) {
	return transcode.SROToSyllabics(text, apply(opts).encode)
}

// SyllabicsToSRO converts the syllabics in text to SRO.
// Accepted options: WithMacrons.
func SyllabicsToSRO(text string, opts ...Option) string {
	return transcode.SyllabicsToSRO(text, apply(opts).decode)
}
