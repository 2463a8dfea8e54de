// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "sync"

// threadManager tracks every non-daemon goroutine spawned through
// [ThreadPortal](false) so that [Join] can wait for all of them, the
// same role the original's process-wide ThreadManager singleton plays
// for joinable std::thread objects.
type threadManager struct {
	mu sync.Mutex
	wg sync.WaitGroup
}

var globalThreadManager threadManager

func (m *threadManager) spawn(task func()) {
	m.mu.Lock()
	m.wg.Add(1)
	m.mu.Unlock()
	go func() {
		defer m.wg.Done()
		task()
	}()
}

// Join blocks until every goroutine spawned via a non-daemon
// [ThreadPortal] has returned. Intended for use at process shutdown or
// between test cases, mirroring the original ThreadManager's join-all
// destructor behavior without relying on a destructor to run it.
func Join() {
	globalThreadManager.wg.Wait()
}

// threadPortal spawns a fresh goroutine per task. When daemon is false
// the goroutine is registered with the package-wide [threadManager] so
// [Join] can wait for it; when true the goroutine is fire-and-forget,
// the Go analog of a detached std::thread.
type threadPortal struct {
	daemon bool
}

// ThreadPortal returns a [Portal] that runs each task on its own
// goroutine. daemon=true fires the goroutine without tracking it
// (detached); daemon=false registers it with the process-wide joiner
// so a later call to [Join] waits for it to finish.
func ThreadPortal(daemon bool) Portal {
	return threadPortal{daemon: daemon}
}

func (p threadPortal) Dispatch(task func()) {
	if p.daemon {
		go task()
		return
	}
	globalThreadManager.spawn(task)
}
