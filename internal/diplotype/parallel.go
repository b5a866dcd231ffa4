package diplotype

import (
	"runtime"
	"sync"

	"github.com/openpgx/pgxcall/internal/genome"
	"github.com/openpgx/pgxcall/internal/reference"
)

// parallelCall calls genes from the channel using a pool of workers and
// returns a channel of results. The result channel is closed once all
// workers finish. Each call only reads the gene reference and the shared
// observation map, so no locking is needed. If workers is 0,
// runtime.NumCPU() is used.
func (e *Engine) parallelCall(genes <-chan *reference.Gene, obs genome.Observations, workers int) <-chan *Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan *Result, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for g := range genes {
				results <- e.caller.Call(g, obs)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
