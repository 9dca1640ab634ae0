package complexity

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/keychain/chain"
)

// Part names a chain configuration: how many directional keypads sit between
// the human and the door.
type Part struct {
	Name        string
	Directional int
}

var (
	// Part1 drives the door through two directional keypads.
	Part1 = Part{Name: "part1", Directional: 2}
	// Part2 drives the door through twenty-five directional keypads.
	Part2 = Part{Name: "part2", Directional: 25}
)

// Parts returns both puzzle parts in order.
func Parts() []Part {
	return []Part{Part1, Part2}
}

// Run scores cs for part p on a freshly built chain and memo table.
func Run(ctx context.Context, cs []Code, p Part, opts ...Option) (Report, error) {
	c, err := chain.New(p.Directional)
	if err != nil {
		return Report{Part: p}, fmt.Errorf("complexity: %s: %w", p.Name, err)
	}
	a := NewAggregator(chain.NewSolver(c), opts...)

	ctx, span := a.tracer.Start(ctx, "complexity.Run", trace.WithAttributes(
		attribute.String("part", p.Name),
		attribute.Int("directional", p.Directional),
		attribute.Int("codes", len(cs)),
	))
	defer span.End()

	rep, err := a.Sum(ctx, cs)
	rep.Part = p
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rep, err
	}
	span.SetAttributes(
		attribute.Int64("total", rep.Total),
		attribute.Int("memo_entries", rep.Memo.Entries),
	)
	return rep, nil
}
