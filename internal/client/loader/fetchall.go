package loader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task fetches one resource of a page and stores it in its own destination.
type Task func(ctx context.Context) error

// Into adapts a typed fetch to a Task writing into dst. dst is written only
// on success.
func Into[T any](dst *T, fetch Fetch[T]) Task {
	return func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// FetchAll runs tasks in parallel and waits for all of them. The group has
// no derived context: a failure does not cancel the siblings, so their
// results stay usable as partial data. The first failure is returned.
func FetchAll(ctx context.Context, tasks ...Task) error {
	var g errgroup.Group
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task(ctx)
		})
	}
	return g.Wait()
}
