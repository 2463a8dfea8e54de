// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Callable binds a [Procedure] to a [Portal]: invoking it dispatches
// the procedure through the portal and joins its result into the
// shared counter once the procedure returns.
type Callable interface {
	Invoke(modifier Modifier, callback Callback)
}

// join consumes modifier's token, firing callback on the terminal
// transition.
func join(modifier Modifier, callback Callback) {
	if !modifier.Decrement() {
		callback()
	}
}

// singlePhaseCallable runs one procedure on one portal, then joins.
type singlePhaseCallable struct {
	portal    Portal
	procedure Procedure
}

// NewCallable returns a [Callable] that runs procedure on portal and
// joins its result modifier when the procedure returns.
func NewCallable(portal Portal, procedure Procedure) Callable {
	return singlePhaseCallable{portal: portal, procedure: procedure}
}

func (c singlePhaseCallable) Invoke(modifier Modifier, callback Callback) {
	c.portal.Dispatch(func() {
		result := c.procedure(modifier, callback)
		join(result, callback)
	})
}

// phaseStep is one entry in a [MultiPhaseCallable]'s sequence.
type phaseStep struct {
	portal    Portal
	procedure Procedure
}

// MultiPhaseCallable chains procedures, each dispatched on its own
// portal only after the previous phase's procedure has returned —
// useful when later phases need to run on a different execution
// substrate than earlier ones (e.g. CPU-bound work on a thread pool
// followed by a quick serial finalization step). Only the final phase
// joins the counter; earlier phases hand the live modifier forward.
type MultiPhaseCallable struct {
	phases []phaseStep
}

// NewMultiPhaseCallable returns an empty [MultiPhaseCallable]. Append
// phases with AppendPhase before passing it to a [Caller].
func NewMultiPhaseCallable() *MultiPhaseCallable {
	return &MultiPhaseCallable{}
}

// AppendPhase adds a phase to run procedure on portal after every
// previously appended phase has completed.
func (m *MultiPhaseCallable) AppendPhase(portal Portal, procedure Procedure) {
	m.phases = append(m.phases, phaseStep{portal: portal, procedure: procedure})
}

func (m *MultiPhaseCallable) Invoke(modifier Modifier, callback Callback) {
	m.execute(0, modifier, callback)
}

func (m *MultiPhaseCallable) execute(i int, modifier Modifier, callback Callback) {
	if i >= len(m.phases) {
		join(modifier, callback)
		return
	}
	step := m.phases[i]
	step.portal.Dispatch(func() {
		next := step.procedure(modifier, callback)
		m.execute(i+1, next, callback)
	})
}

// AsCallable returns m as a [Callable], for use where an API expects
// the interface rather than the concrete builder type.
func (m *MultiPhaseCallable) AsCallable() Callable { return m }
