package complexity

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/keychain/chain"
)

const tracerName = "keychain/complexity"

// ErrScoreOverflow indicates a complexity score or total does not fit in an int64.
var ErrScoreOverflow = errors.New("complexity: score overflows int64")

// Result is the score of one code.
type Result struct {
	Code       Code
	Length     int64 // minimal human keystrokes
	Complexity int64 // Length × Code.Value
}

// Report is the outcome of scoring a list of codes on one chain.
type Report struct {
	Part    Part
	Total   int64
	Results []Result
	Memo    chain.Stats
}

// Aggregator scores codes with a single Solver, sharing its memo table
// across codes.
type Aggregator struct {
	solver *chain.Solver
	tracer trace.Tracer
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(a *Aggregator) {
		if t != nil {
			a.tracer = t
		}
	}
}

// NewAggregator returns an Aggregator backed by s.
func NewAggregator(s *chain.Solver, opts ...Option) *Aggregator {
	a := &Aggregator{solver: s, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Score solves c and multiplies its length by its numeric value.
func (a *Aggregator) Score(ctx context.Context, c Code) (Result, error) {
	_, span := a.tracer.Start(ctx, "complexity.Score",
		trace.WithAttributes(attribute.String("code", c.Text)))
	defer span.End()

	n, err := a.solver.Solve(c.Keys)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("complexity: code %q: %w", c.Text, err)
	}
	if c.Value != 0 && n > math.MaxInt64/c.Value {
		err = fmt.Errorf("complexity: code %q: %w: %d × %d", c.Text, ErrScoreOverflow, n, c.Value)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	r := Result{Code: c, Length: n, Complexity: n * c.Value}
	span.SetAttributes(
		attribute.Int64("length", r.Length),
		attribute.Int64("complexity", r.Complexity),
	)
	return r, nil
}

// Sum scores every code in order and totals the complexities.
// It stops at the first error, when ctx is done, or with ErrScoreOverflow
// when the running total leaves the int64 range.
func (a *Aggregator) Sum(ctx context.Context, cs []Code) (Report, error) {
	rep := Report{Results: make([]Result, 0, len(cs))}
	for _, c := range cs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		r, err := a.Score(ctx, c)
		if err != nil {
			return rep, err
		}
		if rep.Total > math.MaxInt64-r.Complexity {
			return rep, fmt.Errorf("complexity: total after code %q: %w", c.Text, ErrScoreOverflow)
		}
		rep.Results = append(rep.Results, r)
		rep.Total += r.Complexity
	}
	rep.Memo = a.solver.Stats()
	return rep, nil
}
