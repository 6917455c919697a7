package geometry

import "golang.org/x/sync/errgroup"

// span is a half-open range [start, end) of indices handled by one worker.
type span struct {
	start, end int
}

// chunks splits n indices into at most workersCount contiguous spans.
func chunks(n, workersCount int) []span {
	workersCount = max(workersCount, DEFAULT_WORKERS)
	if n == 0 {
		return nil
	}

	chunkSize := (n + workersCount - 1) / workersCount
	spans := make([]span, 0, workersCount)
	for start := 0; start < n; start += chunkSize {
		spans = append(spans, span{start: start, end: min(start+chunkSize, n)})
	}
	return spans
}

// task runs fn over data on workersCount goroutines, each one walking its
// own contiguous chunk. A worker stops at its first error, which is returned
// once every worker is done.
func task[T any](workersCount int, data []T, fn func(data T) error) error {
	var g errgroup.Group

	for _, s := range chunks(len(data), workersCount) {
		g.Go(func() error {
			for i := s.start; i < s.end; i++ {
				if err := fn(data[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
