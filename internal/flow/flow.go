// Package flow implements the linear wizard machines behind the morning,
// evening, and worry check-ins. A machine holds a step cursor and a draft;
// steps collecting a required value gate advancement until the draft has it,
// steps collecting optional lists never block. Drafts live only in memory:
// nothing is persisted until the final step emits.
package flow

// Step describes one wizard step over a draft of type D.
type Step[D any] struct {
	Key      string
	Title    string
	Optional bool
	// Filled reports whether the step's required value is present on the
	// draft. Nil marks an informational step that never blocks.
	Filled func(d D) bool
}

// Outcome is the result of an Advance or Retreat.
type Outcome int

const (
	// Blocked means the current step's required value is missing.
	Blocked Outcome = iota
	// Moved means the cursor changed and the flow continues.
	Moved
	// Completed means Advance ran on the last step; the draft is final.
	Completed
	// Abandoned means Retreat ran on the first step; the draft is discarded.
	Abandoned
)

// Machine is a forward/backward-navigable sequence of fixed steps.
type Machine[D any] struct {
	steps []Step[D]
	idx   int
	Draft D
}

// New seeds a machine with a draft and its step list.
func New[D any](draft D, steps []Step[D]) *Machine[D] {
	return &Machine[D]{steps: steps, Draft: draft}
}

// Index returns the zero-based current step index.
func (m *Machine[D]) Index() int { return m.idx }

// Len returns the fixed step count.
func (m *Machine[D]) Len() int { return len(m.steps) }

// Step returns the current step.
func (m *Machine[D]) Step() Step[D] { return m.steps[m.idx] }

// CanAdvance reports whether the current step's gate passes. Draft field
// writes happen through the draft directly and never move the cursor.
func (m *Machine[D]) CanAdvance() bool {
	s := m.steps[m.idx]
	if s.Optional || s.Filled == nil {
		return true
	}
	return s.Filled(m.Draft)
}

// Advance moves to the next step if the gate passes. On the last step it
// returns Completed instead; the caller takes the draft and tears the
// machine down.
func (m *Machine[D]) Advance() Outcome {
	if !m.CanAdvance() {
		return Blocked
	}
	if m.idx == len(m.steps)-1 {
		return Completed
	}
	m.idx++
	return Moved
}

// Retreat moves to the previous step. On the first step it signals abandon;
// the caller closes without completing.
func (m *Machine[D]) Retreat() Outcome {
	if m.idx == 0 {
		return Abandoned
	}
	m.idx--
	return Moved
}
