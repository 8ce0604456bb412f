package store

import (
	"context"

	"github.com/roach88/crkortho/internal/runner"
)

// Journal records the lines of a run. It implements runner.Recorder.
type Journal struct {
	store     *Store
	direction Direction
	options   Options
}

// Journal returns a recorder that writes every line to s with the given
// direction and options.
func (s *Store) Journal(direction Direction, opts Options) *Journal {
	return &Journal{store: s, direction: direction, options: opts}
}

// Record writes one converted line.
func (j *Journal) Record(ctx context.Context, rec runner.Record) error {
	c, err := NewConversion(rec.Session, rec.Seq, j.direction, j.options, rec.Input, rec.Output)
	if err != nil {
		return err
	}
	return j.store.WriteConversion(ctx, c)
}
