package vectors

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Failure describes one vector that did not verify.
type Failure struct {
	Index  int
	Vector Vector
	Got    string // derived hash, empty when the derivation itself failed
	Err    error
}

// Report is the outcome of Verify.
type Report struct {
	Checked  int
	Failures []Failure // ordered by Index
}

// OK reports whether every checked vector matched.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Verify checks every vector of the set using up to workers goroutines
// (runtime.NumCPU() when workers <= 0). Mismatches and derivation errors are
// collected in the report rather than stopping the run. A cancelled context
// stops the run and returns the context error with a partial report.
func Verify(ctx context.Context, s Set, workers int) (Report, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*Failure, s.Len())
	checked := make([]bool, s.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range s.entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := Check(v)
			checked[i] = true
			if err != nil {
				results[i] = &Failure{Index: i, Vector: v, Got: h.String(), Err: err}
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var r Report
	for i := range results {
		if checked[i] {
			r.Checked++
		}
		if results[i] != nil {
			r.Failures = append(r.Failures, *results[i])
		}
	}
	return r, err
}
