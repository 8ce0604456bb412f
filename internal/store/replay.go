package store

import (
	"context"
	"fmt"
)

// ConvertFunc re-runs one journalled conversion and returns the new output.
type ConvertFunc func(c Conversion) (string, error)

// Mismatch is a journalled conversion whose output was not reproduced.
type Mismatch struct {
	Conversion Conversion `json:"conversion"`
	Got        string     `json:"got"`
}

// ReplayResult reports a replay.
type ReplayResult struct {
	Sessions   int        `json:"sessions"`
	Checked    int        `json:"checked"`
	Mismatches []Mismatch `json:"mismatches"`
}

// Deterministic reports whether every output was reproduced.
func (r ReplayResult) Deterministic() bool {
	return len(r.Mismatches) == 0
}

// Replay re-runs journalled conversions through convert in journal order
// and compares outputs. With an empty session every session is replayed.
// An error from convert stops the replay.
func (s *Store) Replay(ctx context.Context, session string, convert ConvertFunc) (ReplayResult, error) {
	result := ReplayResult{Mismatches: []Mismatch{}}

	var tokens []string
	if session != "" {
		tokens = []string{session}
	} else {
		sessions, err := s.ListSessions(ctx)
		if err != nil {
			return result, fmt.Errorf("replay: %w", err)
		}
		for _, sess := range sessions {
			tokens = append(tokens, sess.Token)
		}
	}

	for _, token := range tokens {
		conversions, err := s.ReadConversions(ctx, token)
		if err != nil {
			return result, fmt.Errorf("replay session %s: %w", token, err)
		}
		if len(conversions) == 0 {
			continue
		}
		result.Sessions++

		for _, c := range conversions {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			got, err := convert(c)
			if err != nil {
				return result, fmt.Errorf("replay conversion %s: %w", c.ID, err)
			}
			result.Checked++
			if got != c.Output {
				result.Mismatches = append(result.Mismatches, Mismatch{Conversion: c, Got: got})
			}
		}
	}
	return result, nil
}
