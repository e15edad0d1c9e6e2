// SPDX-License-Identifier: MIT

package player

// Metrics receives controller events. Implementations must be safe for
// concurrent use; calls happen under the controller lock and must not block.
type Metrics interface {
	// Loaded is called for every successful Load.
	Loaded(name string, total int)

	// Transition is called when the state changes.
	Transition(from, to State)

	// Advanced is called once per cursor move; auto is true for timer driven
	// advances.
	Advanced(name string, auto bool)

	// Rejected is called when op is refused in the current state.
	Rejected(op string)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) Loaded(string, int)      {}
func (NoopMetrics) Transition(State, State) {}
func (NoopMetrics) Advanced(string, bool)   {}
func (NoopMetrics) Rejected(string)         {}
