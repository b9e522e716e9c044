// Package fetch provides a concurrency-bounded mapper for fanning out
// network calls without overwhelming the upstream backend.
package fetch

import (
	"context"
	"sync"
	"sync/atomic"
)

// Map runs mapper over items with at most limit in-flight calls and returns
// results in the original item order: results[i] always corresponds to
// items[i], regardless of completion order.
//
// Workers share a cursor and each write into a preallocated slot, so no sort
// step is needed afterwards. A mapper error never aborts the batch; the slot
// keeps the zero value of R as its fallback. Cancelling ctx stops workers
// from claiming further items, leaving unclaimed slots at their zero value.
func Map[T, R any](ctx context.Context, items []T, limit int, mapper func(ctx context.Context, item T) (R, error)) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	var cursor int64 = -1
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1))
				if i >= len(items) {
					return
				}
				if ctx.Err() != nil {
					return
				}
				if r, err := mapper(ctx, items[i]); err == nil {
					results[i] = r
				}
			}
		}()
	}
	wg.Wait()
	return results
}
