package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	// Later items resolve first; order must still follow the input.
	results := Map(context.Background(), items, 3, func(_ context.Context, item int) (string, error) {
		time.Sleep(time.Duration(10-item) * time.Millisecond)
		return fmt.Sprintf("item-%d", item), nil
	})

	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("item-%d", i), r)
	}
}

func TestMapBoundsConcurrency(t *testing.T) {
	var inFlight, peak int64
	items := make([]int, 20)

	Map(context.Background(), items, 3, func(_ context.Context, _ int) (int, error) {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return 0, nil
	})

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
	assert.Greater(t, atomic.LoadInt64(&peak), int64(0))
}

func TestMapFailedItemsFallBack(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	results := Map(context.Background(), items, 2, func(_ context.Context, item int) ([]string, error) {
		if item%2 == 1 {
			return nil, errors.New("boom")
		}
		return []string{fmt.Sprintf("ok-%d", item)}, nil
	})

	require.Len(t, results, 5)
	assert.Equal(t, []string{"ok-0"}, results[0])
	assert.Nil(t, results[1])
	assert.Equal(t, []string{"ok-2"}, results[2])
	assert.Nil(t, results[3])
	assert.Equal(t, []string{"ok-4"}, results[4])
}

func TestMapEmptyAndOversizedLimit(t *testing.T) {
	assert.Empty(t, Map(context.Background(), nil, 3, func(_ context.Context, item int) (int, error) {
		return item, nil
	}))

	results := Map(context.Background(), []int{1, 2}, 100, func(_ context.Context, item int) (int, error) {
		return item * 2, nil
	})
	assert.Equal(t, []int{2, 4}, results)
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int64
	results := Map(ctx, []int{1, 2, 3, 4}, 2, func(_ context.Context, item int) (int, error) {
		atomic.AddInt64(&calls, 1)
		return item, nil
	})

	require.Len(t, results, 4)
	assert.Zero(t, atomic.LoadInt64(&calls))
}
