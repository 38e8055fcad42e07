// Package async provides the shared worker pool that runs command chains off
// the issuing goroutine.
package async

import "sync"

const (
	defaultWorkers = 8
	defaultQueue   = 256
)

// Pool executes submitted tasks on a fixed set of workers. Tasks run to
// completion; there is no cooperative cancellation.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	// mu serializes Submit against Close so the task channel is never
	// written after it is closed.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given worker count and queue depth.
// Non-positive values fall back to defaults.
func NewPool(workers, queueDepth int) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueDepth <= 0 {
		queueDepth = defaultQueue
	}
	p := &Pool{tasks: make(chan func(), queueDepth)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Submit enqueues a task for execution. It blocks when the queue is full and
// silently drops tasks submitted after Close.
func (p *Pool) Submit(task func()) {
	if p == nil || task == nil {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	p.tasks <- task
}

// Close stops accepting tasks and waits for queued work to drain.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
