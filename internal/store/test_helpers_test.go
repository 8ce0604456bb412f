package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestConversion creates an sro2syllabics conversion with default options.
func createTestConversion(t *testing.T, session string, seq int64, input, output string) Conversion {
	t.Helper()
	c, err := NewConversion(session, seq, DirectionSROToSyllabics, Options{Hyphens: "\u202F", Sandhi: true}, input, output)
	if err != nil {
		t.Fatalf("NewConversion() failed: %v", err)
	}
	return c
}
