// Package harness runs conversion corpora: YAML files of SRO and syllabics
// pairs that pin down the behaviour of both conversion directions.
//
// # Corpus Format
//
//	name: hyphens
//	description: "Morpheme joins and sandhi"
//	cases:
//	  - sro: kâ-mahihkani-pimohtêt
//	    syllabics: "ᑳ\u202Fᒪᐦᐃᐦᑲᓂ\u202Fᐱᒧᐦᑌᐟ"
//	  - sro: pîhc-âyihk
//	    syllabics: "ᐲᐦᐨ\u202Fᐋᔨᕽ"
//	    sandhi: false
//	  - sro: ēwēpāpīhkēwēpinamahk
//	    syllabics: ᐁᐍᐹᐲᐦᑫᐍᐱᓇᒪᕽ
//	    direction: syllabics2sro
//	    macrons: true
//
// A case is checked in both directions unless direction says otherwise.
// Options left out take the CLI defaults: sandhi on, hyphens as U+202F,
// circumflexes.
//
// # Golden Files
//
// RunWithGolden snapshots every check as one line of
// direction, quoted input and quoted output, tab separated, under
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
