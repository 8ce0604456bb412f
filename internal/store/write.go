package store

import (
	"context"
	"fmt"
)

// NewConversion builds a Conversion with its content-addressed ID.
func NewConversion(session string, seq int64, direction Direction, opts Options, input, output string) (Conversion, error) {
	if !direction.Valid() {
		return Conversion{}, fmt.Errorf("new conversion: unknown direction %q", direction)
	}
	id, err := ConversionID(session, seq, direction, opts, input)
	if err != nil {
		return Conversion{}, fmt.Errorf("new conversion: %w", err)
	}
	return Conversion{
		ID:        id,
		Session:   session,
		Seq:       seq,
		Direction: direction,
		Options:   opts,
		Input:     input,
		Output:    output,
	}, nil
}

// WriteConversion appends a conversion to the journal.
// Uses ON CONFLICT DO NOTHING, so writing the same conversion twice is a
// no-op. A second conversion for an existing (session, seq) is also ignored.
func (s *Store) WriteConversion(ctx context.Context, c Conversion) error {
	if c.ID == "" {
		return fmt.Errorf("write conversion: empty id")
	}

	optsJSON, err := marshalOptions(c.Options)
	if err != nil {
		return fmt.Errorf("write conversion: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(id, session, seq, direction, options, input, output)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		c.ID,
		c.Session,
		c.Seq,
		string(c.Direction),
		optsJSON,
		c.Input,
		c.Output,
	)
	if err != nil {
		return fmt.Errorf("write conversion: %w", err)
	}
	return nil
}
