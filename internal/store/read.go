package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a conversion ID is not in the journal.
var ErrNotFound = errors.New("conversion not found")

// ReadConversion returns the conversion with the given ID.
func (s *Store) ReadConversion(ctx context.Context, id string) (Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session, seq, direction, options, input, output
		FROM conversions
		WHERE id = ?
	`, id)

	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("read conversion %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Conversion{}, fmt.Errorf("read conversion %s: %w", id, err)
	}
	return c, nil
}

// ReadConversions returns every conversion of a session, ordered by
// seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) for an unknown session.
func (s *Store) ReadConversions(ctx context.Context, session string) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session, seq, direction, options, input, output
		FROM conversions
		WHERE session = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, session)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

// ListSessions returns every session in the order it was first written.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session, COUNT(*), MIN(seq), MAX(seq)
		FROM conversions
		GROUP BY session
		ORDER BY MIN(rowid) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.Token, &sess.Conversions, &sess.FirstSeq, &sess.LastSeq); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (Conversion, error) {
	var (
		c         Conversion
		direction string
		optsJSON  string
	)
	if err := row.Scan(&c.ID, &c.Session, &c.Seq, &direction, &optsJSON, &c.Input, &c.Output); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversion{}, err
		}
		return Conversion{}, fmt.Errorf("scan conversion: %w", err)
	}

	opts, err := unmarshalOptions(optsJSON)
	if err != nil {
		return Conversion{}, err
	}
	c.Direction = Direction(direction)
	c.Options = opts
	return c, nil
}
