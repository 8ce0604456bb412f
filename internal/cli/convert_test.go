package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/crkortho/internal/store"
)

type conversionResponse struct {
	Status string           `json:"status"`
	Data   ConversionResult `json:"data"`
	Error  *CLIError        `json:"error"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSROToSyllabics_Stdin(t *testing.T) {
	in := "tânisi\nEddie nitisiyihkâson.\r\nkâ-mahihkani-pimohtêt"
	want := "ᑖᓂᓯ\nEddie ᓂᑎᓯᔨᐦᑳᓱᐣ᙮\r\nᑳ" + nnbsp + "ᒪᐦᐃᐦᑲᓂ" + nnbsp + "ᐱᒧᐦᑌᐟ"

	for _, args := range [][]string{{}, {"-"}} {
		out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), in, args...)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}
}

func TestSROToSyllabics_File(t *testing.T) {
	path := writeFile(t, "story.txt", "acimosis\natahk\n")

	out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), "", path)
	require.NoError(t, err)
	assert.Equal(t, "ᐊᒋᒧᓯᐢ\nᐊᑕᕽ\n", out)
}

func TestSROToSyllabics_MissingFile(t *testing.T) {
	_, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), "", "/nonexistent/story.txt")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "input file not found")
}

func TestSROToSyllabics_TooManyArgs(t *testing.T) {
	_, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), "", "a.txt", "b.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg")
}

func TestSROToSyllabics_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"sandhi by default", nil, "pîhc-âyihk\n", "ᐲᐦᒑᔨᕽ\n"},
		{"sandhi", []string{"--sandhi"}, "pîhc-âyihk\n", "ᐲᐦᒑᔨᕽ\n"},
		{"no sandhi", []string{"--no-sandhi"}, "pîhc-âyihk\n", "ᐲᐦᐨ" + nnbsp + "ᐋᔨᕽ\n"},
		{"no sandhi short", []string{"-S"}, "nipêhin-ôma\n", "ᓂᐯᐦᐃᐣ" + nnbsp + "ᐆᒪ\n"},
		{"hyphens", []string{"--hyphens", "-"}, "kisê-manitow\n", "ᑭᓭ-ᒪᓂᑐᐤ\n"},
		{"empty hyphens", []string{"--hyphens", ""}, "kâ-mahihkani-pimohtêt\n", "ᑳᒪᐦᐃᐦᑲᓂᐱᒧᐦᑌᐟ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), tt.in, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSROToSyllabics_SandhiFlagsExclusive(t *testing.T) {
	_, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "text"}), "", "--sandhi", "--no-sandhi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestSROToSyllabics_Config(t *testing.T) {
	cfg := writeFile(t, "crkortho.yaml", "sandhi: false\nhyphens: \"-\"\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"config applies", nil, "ᐲᐦᐨ-ᐋᔨᕽ\n"},
		{"flag overrides sandhi", []string{"--sandhi"}, "ᐲᐦᒑᔨᕽ\n"},
		{"flag overrides hyphens", []string{"--hyphens", "+"}, "ᐲᐦᐨ+ᐋᔨᕽ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &RootOptions{Format: "text", Config: cfg}
			out, err := execute(t, NewSROToSyllabicsCommand(opts), "pîhc-âyihk\n", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSROToSyllabics_InvalidConfig(t *testing.T) {
	cfg := writeFile(t, "crkortho.yaml", "sandhi: maybe\n")

	out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "json", Config: cfg}), "tânisi\n")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp conversionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeConfig, resp.Error.Code)
}

func TestSROToSyllabics_JSON(t *testing.T) {
	out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "json"}), "tânisi\nDr. Smith\n")
	require.NoError(t, err)

	var resp conversionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ᑖᓂᓯ\nDr. Smith\n", resp.Data.Output)
	assert.Equal(t, 2, resp.Data.Stats.Lines)
	assert.Equal(t, 1, resp.Data.Stats.Changed)
	assert.Empty(t, resp.Data.Stats.Session)
}

func TestSROToSyllabics_Journal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")

	out, err := execute(t, NewSROToSyllabicsCommand(&RootOptions{Format: "json"}), "tânisi\npîhc-âyihk\n", "--db", db, "--no-sandhi")
	require.NoError(t, err)

	var resp conversionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	session := resp.Data.Stats.Session
	require.NotEmpty(t, session)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	conversions, err := st.ReadConversions(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, conversions, 2)
	assert.Equal(t, "pîhc-âyihk", conversions[1].Input)
	assert.Equal(t, "ᐲᐦᐨ"+nnbsp+"ᐋᔨᕽ", conversions[1].Output)
	assert.Equal(t, store.DirectionSROToSyllabics, conversions[1].Direction)
	assert.Equal(t, store.Options{Hyphens: nnbsp, Sandhi: false}, conversions[1].Options)
	assert.Less(t, conversions[0].Seq, conversions[1].Seq)
}

func TestSyllabicsToSRO_Flags(t *testing.T) {
	in := "ᐁᐍᐹᐲᐦᑫᐍᐱᓇᒪᕽ\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"circumflexes by default", nil, "êwêpâpîhkêwêpinamahk\n"},
		{"circumflexes", []string{"-c"}, "êwêpâpîhkêwêpinamahk\n"},
		{"macrons", []string{"--macrons"}, "ēwēpāpīhkēwēpinamahk\n"},
		{"macrons short", []string{"-m"}, "ēwēpāpīhkēwēpinamahk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewSyllabicsToSROCommand(&RootOptions{Format: "text"}), in, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSyllabicsToSRO_Stdin(t *testing.T) {
	in := "Eddie ᓂᑎᓯᔨᑲᓱᐣ\r\nᑳ" + nnbsp + "ᒪᐦᐃᐦᑲᓂ" + nnbsp + "ᐱᒧᐦᑌᐟ\nᑖᓂᓯ᙮"
	want := "Eddie nitisiyikason\r\nkâ-mahihkani-pimohtêt\ntânisi."

	out, err := execute(t, NewSyllabicsToSROCommand(&RootOptions{Format: "text"}), in, "-")
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestSyllabicsToSRO_MacronFlagsExclusive(t *testing.T) {
	_, err := execute(t, NewSyllabicsToSROCommand(&RootOptions{Format: "text"}), "", "-m", "-c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestSyllabicsToSRO_Config(t *testing.T) {
	cfg := writeFile(t, "crkortho.json", `{"macrons": true}`)
	opts := &RootOptions{Format: "text", Config: cfg}

	out, err := execute(t, NewSyllabicsToSROCommand(opts), "ᐋ\n")
	require.NoError(t, err)
	assert.Equal(t, "ā\n", out)

	out, err = execute(t, NewSyllabicsToSROCommand(opts), "ᐋ\n", "--circumflexes")
	require.NoError(t, err)
	assert.Equal(t, "â\n", out)
}

func TestSyllabicsToSRO_Journal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")

	_, err := execute(t, NewSyllabicsToSROCommand(&RootOptions{Format: "text"}), "ᑖᓂᓯ\n", "--db", db, "--macrons")
	require.NoError(t, err)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	sessions, err := st.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].Conversions)

	conversions, err := st.ReadConversions(context.Background(), sessions[0].Token)
	require.NoError(t, err)
	require.Len(t, conversions, 1)
	assert.Equal(t, "tānisi", conversions[0].Output)
	assert.Equal(t, store.Options{Macrons: true}, conversions[0].Options)
}
