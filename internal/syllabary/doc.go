// Package syllabary holds the Cree symbol table: the mapping between SRO
// syllables and Canadian Aboriginal Syllabics characters.
//
// The table has two tiers:
//   - A base bijection from SRO syllable (1-3 runes) to exactly one syllabic
//     rune, and its derived inverse. Both have the same number of entries.
//   - An override layer used only when decoding. It maps look-alike glyphs
//     and the syllabics full stop onto SRO text. Overrides are many-to-one
//     and never enter the base bijection.
//
// The process-wide table is built once when the package is initialised and is
// never mutated afterwards, so it can be shared between goroutines without
// locking.
package syllabary
