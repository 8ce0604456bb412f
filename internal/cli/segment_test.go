package cli

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/crkortho/internal/transcode"
)

func TestSegmentCommand_Text(t *testing.T) {
	out, err := execute(t, NewSegmentCommand(&RootOptions{Format: "text"}), "", "atahk", "kâ-nipât")
	require.NoError(t, err)

	assert.Equal(t,
		`atahk: a="ᐊ" ta="ᑕ" hk="ᕽ"`+"\n"+
			`kâ-nipât: kâ="ᑳ" -="\u202f" ni="ᓂ" pâ="ᐹ" t="ᐟ"`+"\n",
		out)
}

func TestSegmentCommand_NoSandhi(t *testing.T) {
	out, err := execute(t, NewSegmentCommand(&RootOptions{Format: "text"}), "", "--no-sandhi", "pîhc-âyihk")
	require.NoError(t, err)
	assert.Contains(t, out, `c="ᐨ" -="\u202f" â="ᐋ"`)

	out, err = execute(t, NewSegmentCommand(&RootOptions{Format: "text"}), "", "pîhc-âyihk")
	require.NoError(t, err)
	assert.Contains(t, out, `câ="ᒑ"`)
}

func TestSegmentCommand_JSON(t *testing.T) {
	out, err := execute(t, NewSegmentCommand(&RootOptions{Format: "json"}), "", "mistihkwêw")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   []WordSegments `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "mistihkwêw", resp.Data[0].Word)
	assert.Equal(t, []transcode.Segment{
		{SRO: "mi", Syllabics: "ᒥ"},
		{SRO: "s", Syllabics: "ᐢ"},
		{SRO: "ti", Syllabics: "ᑎ"},
		{SRO: "h", Syllabics: "ᐦ"},
		{SRO: "kwê", Syllabics: "ᑵ"},
		{SRO: "w", Syllabics: "ᐤ"},
	}, resp.Data[0].Segments)
}

func TestSegmentCommand_Unsegmentable(t *testing.T) {
	out, err := execute(t, NewSegmentCommand(&RootOptions{Format: "json"}), "", "nix")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, transcode.IsUnsegmentable(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnsegmentable, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", details["remainder"])
}

func TestSegmentCommand_MissingArgs(t *testing.T) {
	_, err := execute(t, NewSegmentCommand(&RootOptions{Format: "text"}), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
