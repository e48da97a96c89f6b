package jasmin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xiaobogaga/jmm/compiler/internal/ir"
	"github.com/xiaobogaga/jmm/compiler/internal/report"
)

type Result struct {
	ClassName string
	Code      string
	Reports   []report.Report
}

// BuildAll generates every unit with its own Generator, at most jobs at a time (no limit when jobs <= 0).
// Results keep the order of units. The first failure cancels the units not started yet and is returned.
func BuildAll(ctx context.Context, units []*ir.ClassUnit, options Options, jobs int) ([]Result, error) {
	results := make([]Result, len(units))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			generator := NewGenerator(unit, options)
			code, err := generator.Build()
			if err != nil {
				return err
			}
			results[i] = Result{ClassName: unit.ClassName, Code: code, Reports: generator.Reports()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
