// Package parallel contains a bounded parallel ForEach and the worker count policy.
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length. The first error returned
// by body is reported once every started iteration has finished; iterations not
// yet started are skipped after an error.
func ForEach(length, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return nil
	}

	var (
		sem   = make(chan struct{}, limit)
		wg    sync.WaitGroup
		mut   sync.Mutex
		first error
	)
	failed := func() bool {
		mut.Lock()
		defer mut.Unlock()
		return first != nil
	}

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		if failed() {
			<-sem
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := body(i); err != nil {
				mut.Lock()
				if first == nil {
					first = err
				}
				mut.Unlock()
			}
		}(i)
	}

	wg.Wait()
	return first
}
