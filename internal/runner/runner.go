// Package runner streams text through a converter one line at a time.
//
// Lines are read with their terminators. Only the line content is converted;
// the terminator is written back unchanged, so the output has exactly the
// line structure of the input. When a Recorder is configured every line is
// also recorded under a session token and a logical sequence number.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Converter converts the content of one line.
type Converter interface {
	Convert(line string) (string, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(line string) (string, error)

// Convert calls f(line).
func (f ConverterFunc) Convert(line string) (string, error) {
	return f(line)
}

// Record is one converted line.
type Record struct {
	Session string
	Seq     int64
	Input   string
	Output  string
}

// Recorder receives every converted line, in order.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// Stats summarises a run.
type Stats struct {
	Session string `json:"session,omitempty"`
	Lines   int    `json:"lines"`
	Changed int    `json:"changed"`
}

// Runner converts a stream line by line. A Runner may be reused for several
// runs; each run with a Recorder gets a fresh session token.
type Runner struct {
	conv     Converter
	recorder Recorder
	sessions SessionGenerator
	clock    *Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder records every converted line.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithSessionGenerator replaces the UUIDv7 session generator.
func WithSessionGenerator(gen SessionGenerator) Option {
	return func(r *Runner) {
		r.sessions = gen
	}
}

// WithClock sets the clock used to number lines.
func WithClock(c *Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// New creates a Runner for conv.
func New(conv Converter, opts ...Option) *Runner {
	r := &Runner{
		conv:     conv,
		sessions: UUIDv7Generator{},
		clock:    NewClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run converts in to out until EOF. Cancellation is checked between lines;
// lines already written stay written.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats
	if r.recorder != nil {
		stats.Session = r.sessions.Generate()
	}

	br := bufio.NewReader(in)
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, readErr)
		}
		if line == "" {
			break
		}
		stats.Lines++

		content, terminator := splitTerminator(line)
		converted, err := r.conv.Convert(content)
		if err != nil {
			return stats, fmt.Errorf("convert line %d: %w", stats.Lines, err)
		}
		if converted != content {
			stats.Changed++
		}

		if _, err := bw.WriteString(converted + terminator); err != nil {
			return stats, fmt.Errorf("write line %d: %w", stats.Lines, err)
		}

		if r.recorder != nil {
			rec := Record{
				Session: stats.Session,
				Seq:     r.clock.Next(),
				Input:   content,
				Output:  converted,
			}
			if err := r.recorder.Record(ctx, rec); err != nil {
				return stats, fmt.Errorf("record line %d: %w", stats.Lines, err)
			}
		}

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}

	slog.Debug("run finished",
		"session", stats.Session,
		"lines", stats.Lines,
		"changed", stats.Changed,
	)
	return stats, nil
}

// splitTerminator separates a trailing "\n" or "\r\n" from line.
func splitTerminator(line string) (content, terminator string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
