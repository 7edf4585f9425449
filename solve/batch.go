package solve

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridbot/labeling"
	"github.com/katalvlaran/gridbot/snapshot"
)

// All solves every scene with at most limit solves running at once
// (limit <= 0 means no bound). Results are in the order of scenes.
//
// The first failure cancels the solves that have not started yet and is
// returned with the index of its scene. Cancelling ctx has the same effect.
// opts are shared by all solves, so an OnSettle hook must be safe for
// concurrent use.
//
// Complexity: the sum of the Plan costs, spread over up to limit goroutines.
func All(ctx context.Context, scenes []*snapshot.Scene, limit int, opts ...labeling.Option) ([]*Result, error) {
	results := make([]*Result, len(scenes))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, scene := range scenes {
		i, scene := i, scene
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := Solve(scene, opts...)
			if err != nil {
				return fmt.Errorf("scene %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
