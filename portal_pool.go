// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ThreadPoolPortal is a fixed-size pool of worker goroutines pulling
// tasks off a lock-free MPMC queue. Grounded on the original's
// ThreadPoolPortal, with the mutex/condvar task queue and worker loop
// replaced by [code.hybscloud.com/lfq]'s bounded MPMC queue and an
// adaptive backoff ([code.hybscloud.com/iox]) instead of blocking on a
// condition variable.
type ThreadPoolPortal struct {
	tasks    *lfq.MPMC[func()]
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewThreadPoolPortal starts concurrency worker goroutines draining a
// bounded task queue of the given capacity and returns a [Portal] that
// submits to it. Dispatch blocks, retrying with an adaptive backoff,
// while the queue is full — Dispatch never silently drops work.
//
// workerPortal selects how the pool's own worker goroutines are
// spawned; pass [ThreadPortal](false) to have them tracked by [Join],
// or [ThreadPortal](true) to run them as daemons.
func NewThreadPoolPortal(concurrency, capacity int, workerPortal Portal) *ThreadPoolPortal {
	p := &ThreadPoolPortal{
		tasks:    lfq.NewMPMC[func()](capacity),
		shutdown: make(chan struct{}),
	}
	p.wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		workerPortal.Dispatch(p.worker)
	}
	return p
}

func (p *ThreadPoolPortal) worker() {
	defer p.wg.Done()
	var bo iox.Backoff
	for {
		task, err := p.tasks.Dequeue()
		if err != nil {
			select {
			case <-p.shutdown:
				return
			default:
			}
			bo.Wait()
			continue
		}
		bo.Reset()
		task()
	}
}

// Dispatch enqueues task, retrying with an adaptive backoff while the
// queue is momentarily full.
func (p *ThreadPoolPortal) Dispatch(task func()) {
	var bo iox.Backoff
	for p.tasks.Enqueue(&task) != nil {
		bo.Wait()
	}
}

// Shutdown signals every worker goroutine to exit once the queue runs
// dry and waits for them to return. The portal must not be used for
// further Dispatch calls afterward.
func (p *ThreadPoolPortal) Shutdown() {
	close(p.shutdown)
	p.wg.Wait()
}
