package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingCorpus = `name: greetings
description: Common greetings
cases:
  - sro: tânisi
    syllabics: ᑖᓂᓯ
  - sro: acimosis
    syllabics: ᐊᒋᒧᓯᐢ
`

const failingCorpus = `name: wrong
description: A case with the wrong syllabics
cases:
  - sro: atahk
    syllabics: ᐊᑕᐦᐠ
    direction: sro2syllabics
`

func corpusDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

type testResponse struct {
	Status string     `json:"status"`
	Data   TestResult `json:"data"`
	Error  *CLIError  `json:"error"`
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentDir(t *testing.T) {
	_, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", "/nonexistent/corpus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "corpus directory not found")
}

func TestTestCommandEmptyDir(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No corpora found.")

	out, err = execute(t, NewTestCommand(&RootOptions{Format: "json"}), "", dir)
	require.NoError(t, err)

	var resp testResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Data.Total)
	assert.Empty(t, resp.Data.Corpora)
}

func TestTestCommandPassing(t *testing.T) {
	dir := corpusDir(t, map[string]string{"greetings.yaml": passingCorpus})

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ greetings (4 checks)")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailing(t *testing.T) {
	dir := corpusDir(t, map[string]string{
		"greetings.yaml": passingCorpus,
		"wrong.yaml":     failingCorpus,
	})

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✓ greetings")
	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, `cases[0] sro2syllabics: "atahk"`)
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestTestCommandFailingJSON(t *testing.T) {
	dir := corpusDir(t, map[string]string{"wrong.yaml": failingCorpus})

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "json"}), "", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp testResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCorpus, resp.Error.Code)
	require.Len(t, resp.Data.Corpora, 1)
	assert.False(t, resp.Data.Corpora[0].Pass)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestTestCommandFilter(t *testing.T) {
	dir := corpusDir(t, map[string]string{
		"greetings.yaml": passingCorpus,
		"wrong.yaml":     failingCorpus,
	})

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--filter", "greet*")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ greetings")
	assert.NotContains(t, out, "wrong")
}

func TestTestCommandMalformedCorpus(t *testing.T) {
	dir := corpusDir(t, map[string]string{"typo.yaml": "name: typo\ndescription: d\ncase: []\n"})

	_, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "typo.yaml")
}

func TestTestCommandGolden(t *testing.T) {
	dir := corpusDir(t, map[string]string{"greetings.yaml": passingCorpus})
	golden := filepath.Join(t.TempDir(), "golden")

	// Without a snapshot, the case expectations alone decide.
	_, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--golden", golden)
	require.NoError(t, err)

	out, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--golden", golden, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	data, err := os.ReadFile(goldenFilePath(golden, "greetings"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sro2syllabics\t\"tânisi\"\t\"ᑖᓂᓯ\"\n")

	_, err = execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--golden", golden)
	require.NoError(t, err)

	// A stale snapshot fails the corpus.
	require.NoError(t, os.WriteFile(goldenFilePath(golden, "greetings"), []byte("stale\n"), 0644))
	out, err = execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--golden", golden)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "does not match golden file")
}

func TestTestCommandUpdateRequiresGolden(t *testing.T) {
	dir := corpusDir(t, map[string]string{"greetings.yaml": passingCorpus})

	_, err := execute(t, NewTestCommand(&RootOptions{Format: "text"}), "", dir, "--update")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "golden", "basics.golden"), goldenFilePath(filepath.Join("testdata", "golden"), "basics"))
}
