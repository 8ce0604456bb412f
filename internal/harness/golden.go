package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the outputs of a result, one check per line:
// direction, quoted input and quoted output separated by tabs. Quoting
// makes invisible characters such as U+202F show up as escapes.
func Snapshot(result *Result) []byte {
	var buf bytes.Buffer
	for _, check := range result.Checks {
		fmt.Fprintf(&buf, "%s\t%q\t%q\n", check.Direction, check.Input, check.Got)
	}
	return buf.Bytes()
}

// RunWithGolden runs a corpus and compares its snapshot against
// testdata/golden/{corpus.Name}.golden.
//
// Returns an error if a conversion fails. A snapshot mismatch fails t.
func RunWithGolden(t *testing.T, corpus *Corpus) (*Result, error) {
	t.Helper()

	result, err := Run(corpus)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, corpus.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result))
}
