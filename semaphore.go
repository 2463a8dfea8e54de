// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// BinarySemaphore is a one-shot wait/release pair: Wait blocks until
// Release has been called at least once. A single paired use is
// sufficient; flavors differ only in how Wait blocks.
type BinarySemaphore interface {
	Wait()
	Release()
}

// channelSemaphore is the disposable flavor: a one-shot channel close.
// This is the Go idiom for std::promise<void>/std::future<void> — the
// close-then-receive pair already gives the happens-before edge the
// protocol needs, with no extra synchronization.
type channelSemaphore struct {
	done chan struct{}
	once sync.Once
}

// NewChannelSemaphore returns the default [BinarySemaphore], used by
// [SyncInvoke]. Release is idempotent; only the first call matters.
func NewChannelSemaphore() BinarySemaphore {
	return &channelSemaphore{done: make(chan struct{})}
}

func (s *channelSemaphore) Wait() { <-s.done }

func (s *channelSemaphore) Release() { s.once.Do(func() { close(s.done) }) }

// spinSemaphore busy-waits on an atomic flag, pausing the CPU between
// attempts via [spin.Pause] — the same CPU-pause hint [code.hybscloud.com/lfq]
// uses internally for its lock-free queues.
type spinSemaphore struct {
	ready atomix.Uint32
}

// NewSpinSemaphore returns a spin-waiting [BinarySemaphore]. Appropriate
// only when Release is expected imminently; otherwise prefer
// [NewChannelSemaphore] or [NewCondSemaphore].
func NewSpinSemaphore() BinarySemaphore {
	return &spinSemaphore{}
}

func (s *spinSemaphore) Wait() {
	for s.ready.Load() == 0 {
		spin.Pause()
	}
}

func (s *spinSemaphore) Release() { s.ready.Store(1) }

// condSemaphore blocks on a condition variable, the Go analog of a
// mutex+condvar binary semaphore.
type condSemaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	ready bool
}

// NewCondSemaphore returns a [BinarySemaphore] that blocks the waiting
// goroutine on a [sync.Cond] rather than spinning or using a channel.
func NewCondSemaphore() BinarySemaphore {
	s := &condSemaphore{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *condSemaphore) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.ready {
		s.cond.Wait()
	}
}

func (s *condSemaphore) Release() {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.cond.Signal()
}
