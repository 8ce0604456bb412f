package syllabary

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Code points with special handling.
const (
	FullStop           = '\u166E' // CANADIAN SYLLABICS FULL STOP
	FinalMiddleDot     = '\u1427' // CANADIAN SYLLABICS FINAL MIDDLE DOT
	NarrowNoBreakSpace = '\u202F'

	BlockStart = '\u1400'
	BlockEnd   = '\u167F'
)

var (
	// ErrUnknownSyllable is returned when an SRO syllable has no syllabic.
	ErrUnknownSyllable = errors.New("unknown syllable")

	// ErrUnknownSyllabic is returned when a rune has no SRO decoding.
	// Callers pass such runes through unchanged.
	ErrUnknownSyllabic = errors.New("unknown syllabic")
)

// IsSyllabic reports whether r lies in the Unified Canadian Aboriginal
// Syllabics block.
func IsSyllabic(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// Table is an immutable two-tier symbol table.
type Table struct {
	forward   map[string]rune
	inverse   map[rune]string
	overrides map[rune]string
	wdots     map[rune]rune
	scan      *trie
	syllables []string
}

var defaultTable = mustBuild(baseEntries, overrideEntries)

// Default returns the process-wide symbol table.
func Default() *Table {
	return defaultTable
}

func mustBuild(entries []entry, overrides map[rune]string) *Table {
	t, err := build(entries, overrides)
	if err != nil {
		panic(fmt.Sprintf("syllabary: %v", err))
	}
	return t
}

// build derives the inverse, w-dot and scanning structures from entries.
// It fails if any syllable or syllabic appears twice, since the inverse could
// then no longer have as many entries as the forward map.
func build(entries []entry, overrides map[rune]string) (*Table, error) {
	t := &Table{
		forward:   make(map[string]rune, len(entries)),
		inverse:   make(map[rune]string, len(entries)),
		overrides: make(map[rune]string, len(overrides)),
		wdots:     make(map[rune]rune),
		scan:      newTrie(),
	}

	for _, en := range entries {
		if en.sro == "" {
			return nil, fmt.Errorf("empty syllable for %U", en.syllabic)
		}
		if _, dup := t.forward[en.sro]; dup {
			return nil, fmt.Errorf("syllable %q listed twice", en.sro)
		}
		t.forward[en.sro] = en.syllabic
		t.inverse[en.syllabic] = en.sro
		if en.scan {
			t.scan.insert(en.sro, en.syllabic)
			t.syllables = append(t.syllables, en.sro)
		}
	}
	if len(t.inverse) != len(t.forward) {
		return nil, fmt.Errorf("inverse has %d entries, forward has %d: a syllabic maps to two syllables",
			len(t.inverse), len(t.forward))
	}

	for r, sro := range overrides {
		t.overrides[r] = sro
	}

	// Seven complete series (w, pw, tw, kw, cw, mw, sw) give 49 entries; the
	// yw series and nwê, nwa, nwâ add ten more.
	for sro, dotted := range t.forward {
		base, ok := wBase(sro)
		if !ok {
			continue
		}
		if undotted, ok := t.forward[base]; ok {
			t.wdots[undotted] = dotted
		}
	}

	sort.SliceStable(t.syllables, func(i, j int) bool {
		return utf8.RuneCountInString(t.syllables[i]) > utf8.RuneCountInString(t.syllables[j])
	})

	return t, nil
}

// wBase strips the w glide from "wV" or "CwV", returning "V" or "CV".
func wBase(sro string) (string, bool) {
	runes := []rune(sro)
	switch {
	case len(runes) == 2 && runes[0] == 'w' && isVowel(runes[1]):
		return string(runes[1]), true
	case len(runes) == 3 && runes[1] == 'w' && isVowel(runes[2]):
		return string([]rune{runes[0], runes[2]}), true
	}
	return "", false
}

func isVowel(r rune) bool {
	switch r {
	case 'ê', 'i', 'î', 'o', 'ô', 'a', 'â':
		return true
	}
	return false
}

// Forward returns the syllabic for an SRO syllable.
func (t *Table) Forward(syllable string) (rune, error) {
	r, ok := t.forward[syllable]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSyllable, syllable)
	}
	return r, nil
}

// Backward returns the SRO text for a syllabic. The override layer is
// consulted before the base inverse.
func (t *Table) Backward(r rune) (string, error) {
	if sro, ok := t.overrides[r]; ok {
		return sro, nil
	}
	if sro, ok := t.inverse[r]; ok {
		return sro, nil
	}
	return "", fmt.Errorf("%w: %U", ErrUnknownSyllabic, r)
}

// LongestMatch returns the longest scannable syllable that prefixes s.
func (t *Table) LongestMatch(s string) (syllable string, syllabic rune, ok bool) {
	n, r, ok := t.scan.longestPrefix(s)
	if !ok {
		return "", 0, false
	}
	return s[:n], r, true
}

// WDotted returns the w-syllabic written as base followed by FINAL MIDDLE DOT.
func (t *Table) WDotted(base rune) (rune, bool) {
	r, ok := t.wdots[base]
	return r, ok
}

// Len returns the number of base entries.
func (t *Table) Len() int {
	return len(t.forward)
}

// InverseLen returns the number of entries in the derived inverse, not
// counting overrides.
func (t *Table) InverseLen() int {
	return len(t.inverse)
}

// Syllables returns the scannable inventory, longest syllables first.
func (t *Table) Syllables() []string {
	out := make([]string, len(t.syllables))
	copy(out, t.syllables)
	return out
}
