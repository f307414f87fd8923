package workers

import (
	"context"
	"errors"
	"sync"
)

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// New groups ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first worker to return an error cancels the others. Errors are
// joined.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				cancel()
			}
		}(worker)
	}

	wg.Wait()
	return errors.Join(errs...)
}
