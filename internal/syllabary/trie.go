package syllabary

import "unicode/utf8"

// trie is a rune trie over the scannable inventory. A node is terminal when
// it carries a syllabic.
type trie struct {
	children map[rune]*trie
	syllabic rune
	terminal bool
}

func newTrie() *trie {
	return &trie{children: make(map[rune]*trie)}
}

func (t *trie) insert(s string, syllabic rune) {
	node := t
	for _, r := range s {
		next, ok := node.children[r]
		if !ok {
			next = newTrie()
			node.children[r] = next
		}
		node = next
	}
	node.syllabic = syllabic
	node.terminal = true
}

// longestPrefix walks s and returns the byte length of the longest inserted
// prefix along with its syllabic.
func (t *trie) longestPrefix(s string) (n int, syllabic rune, ok bool) {
	node := t
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next, found := node.children[r]
		if !found {
			break
		}
		i += size
		node = next
		if node.terminal {
			n, syllabic, ok = i, node.syllabic, true
		}
	}
	return n, syllabic, ok
}
