package pcomb

import (
	"github.com/gopeg/pcomb/internal/queue"
)

// breadthEntry is one complete partial solution of some depth, sitting in
// the frontier queue: the cursor it was reached at, the child's resume state
// to use when growing past it, and the results accumulated so far.
type breadthEntry struct {
	Cursor Cursor
	Child  State
	Results []Value
}

func cloneFrontier(q *queue.Queue[breadthEntry]) *queue.Queue[breadthEntry] {
	return queue.New(q.Items()...)
}

func peekHead(q *queue.Queue[breadthEntry]) (breadthEntry, bool) {
	e, ok := q.First()
	if ok {
		q.Prepend(e)
	}
	return e, ok
}

// breadthGrow is the one phase of Breadth's state machine that escapes to
// Breadth's own parent, carried inside a Resolved. Yield is never deferred
// across a Dispatch, so it needs no state type of its own: yield and grow
// are just two mutually recursive steps over the same frontier queue.
type breadthGrow struct{ queue *queue.Queue[breadthEntry] }

// Breadth implements non-greedy, level-order bounded repetition: it yields
// solutions in increasing order of match count, growing the frontier one
// level at a time only once every solution at the current level has been
// exhausted.
type Breadth struct {
	Child   Matcher
	Lo, Hi  int
	Flatten bool
}

func NewBreadth(child Matcher, lo, hi int, flatten bool) Breadth {
	return Breadth{Child: child, Lo: lo, Hi: hi, Flatten: flatten}
}

func (m Breadth) yield(q *queue.Queue[breadthEntry]) Transition {
	qc := cloneFrontier(q)
	head, ok := peekHead(qc)
	if !ok {
		return FAILURE
	}
	if len(head.Results) >= m.Lo {
		return Success(breadthGrow{qc}, head.Cursor, assemble(head.Results, m.Flatten))
	}
	return m.grow(qc)
}

func (m Breadth) grow(q *queue.Queue[breadthEntry]) Transition {
	qc := cloneFrontier(q)
	head, ok := peekHead(qc)
	if !ok {
		return FAILURE
	}
	if len(head.Results) >= m.Hi {
		return FAILURE
	}
	return dispatch(m, breadthGrow{qc}, m.Child, head.Child, head.Cursor)
}

func (m Breadth) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		q := queue.New(breadthEntry{Cursor: cur, Child: CLEAN})
		return m.yield(q)
	case breadthGrow:
		return m.grow(s.queue)
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Breadth", "Execute", state)
	}
}

func (m Breadth) Success(parentState, childState State, cur Cursor, val Value) Transition {
	s, ok := parentState.(breadthGrow)
	if !ok {
		return newContractError("Breadth", "Success", parentState)
	}

	qc := cloneFrontier(s.queue)
	head, _ := qc.First()
	qc.Prepend(breadthEntry{Cursor: head.Cursor, Child: childState, Results: head.Results})
	deeper := append(append([]Value{}, head.Results...), val)
	qc.Append(breadthEntry{Cursor: cur, Child: CLEAN, Results: deeper})
	return m.grow(qc)
}

func (m Breadth) Failure(parentState State) Transition {
	s, ok := parentState.(breadthGrow)
	if !ok {
		return newContractError("Breadth", "Failure", parentState)
	}

	qc := cloneFrontier(s.queue)
	qc.First()
	if qc.IsEmpty() {
		return FAILURE
	}
	return m.yield(qc)
}
