package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoOutput(c Conversion) (string, error) {
	return c.Output, nil
}

func seedSessions(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.WriteConversion(ctx, createTestConversion(t, "a", 1, "tânisi", "ᑖᓂᓯ")))
	require.NoError(t, s.WriteConversion(ctx, createTestConversion(t, "a", 2, "niya", "ᓂᔭ")))
	require.NoError(t, s.WriteConversion(ctx, createTestConversion(t, "b", 3, "nitha", "ᓂᖬ")))
}

func TestReplay_AllSessions(t *testing.T) {
	s := createTestStore(t)
	seedSessions(t, s)

	result, err := s.Replay(context.Background(), "", echoOutput)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sessions)
	assert.Equal(t, 3, result.Checked)
	assert.True(t, result.Deterministic())
	assert.Empty(t, result.Mismatches)
}

func TestReplay_OneSession(t *testing.T) {
	s := createTestStore(t)
	seedSessions(t, s)

	var seen []int64
	result, err := s.Replay(context.Background(), "a", func(c Conversion) (string, error) {
		seen = append(seen, c.Seq)
		return c.Output, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sessions)
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestReplay_ReportsMismatch(t *testing.T) {
	s := createTestStore(t)
	seedSessions(t, s)

	result, err := s.Replay(context.Background(), "", func(c Conversion) (string, error) {
		if c.Input == "niya" {
			return "ᓂᔮ", nil
		}
		return c.Output, nil
	})
	require.NoError(t, err)
	assert.False(t, result.Deterministic())
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "niya", result.Mismatches[0].Conversion.Input)
	assert.Equal(t, "ᓂᔮ", result.Mismatches[0].Got)
}

func TestReplay_ConvertError(t *testing.T) {
	s := createTestStore(t)
	seedSessions(t, s)

	boom := errors.New("boom")
	_, err := s.Replay(context.Background(), "", func(Conversion) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestReplay_UnknownSession(t *testing.T) {
	s := createTestStore(t)
	seedSessions(t, s)

	result, err := s.Replay(context.Background(), "nobody", echoOutput)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sessions)
	assert.Equal(t, 0, result.Checked)
}
