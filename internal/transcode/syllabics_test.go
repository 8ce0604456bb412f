package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSyllabicsRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{"nnbsp joins runs", "ᑳ" + nnbsp + "ᒪ ᐊ", []Span{{Start: 0, End: 9}, {Start: 10, End: 13}}},
		{"double nnbsp splits", "ᐊ" + nnbsp + nnbsp + "ᐊ", []Span{{Start: 0, End: 3}, {Start: 9, End: 12}}},
		{"trailing nnbsp excluded", "ᐊ" + nnbsp, []Span{{Start: 0, End: 3}}},
		{"latin around", "Eddie ᓂᑎ.", []Span{{Start: 6, End: 12}}},
		{"none", "tânisi", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindSyllabicsRuns(tt.text))
		})
	}
}

func TestComposeWDots(t *testing.T) {
	assert.Equal(t, "ᐚᐸᒣᐤ", ComposeWDots("ᐋᐧᐸᒣᐤ"))
	assert.Equal(t, "ᐚ", ComposeWDots("ᐚ"))
	assert.Equal(t, "ᐧ", ComposeWDots("ᐧ"))
	assert.Equal(t, "ᓂᐧ", ComposeWDots("ᓂᐧ"))
}
