package pcomb

// Transition is the only return type of a matcher's Execute, Success, and
// Failure methods. It is a closed set from the matcher's point of view
// (Dispatch, Resolved, the FAILURE sentinel) plus Fatal, which is how this
// implementation surfaces the two kinds of error spec section 7 calls out
// as distinguishable from an ordinary match failure.
type Transition interface {
	transition()
}

// Dispatch is the "Execute" message: drive Child at Cursor in ChildState;
// once it resolves (possibly after further Dispatches of its own), deliver
// the outcome to Parent in ParentState via Parent.Success or Parent.Failure.
type Dispatch struct {
	Parent      Matcher
	ParentState State
	Child       Matcher
	ChildState  State
	Cursor      Cursor
}

func (Dispatch) transition() {}

// Resolved carries a successful outcome: State describes how to resume this
// matcher on the next backtrack, Cursor is the position after the match,
// Value is what was produced. It implements both the "Success" message (the
// matcher resolved on its own, from Execute) and the "Response" message (the
// matcher resolved while reacting to a child's outcome, from Success or
// Failure) — the two spec names for the same payload, distinguished only by
// which callback produced them.
type Resolved struct {
	State  State
	Cursor Cursor
	Value  Value
}

func (Resolved) transition() {}

type failureSentinel struct{}

func (failureSentinel) transition() {}

// FAILURE is the sentinel transition meaning ordinary, expected match
// failure. It is never wrapped in an error and never carries a state: a
// matcher that fails has nothing useful to resume.
var FAILURE Transition = failureSentinel{}

// Fatal is returned in place of Dispatch/Resolved/FAILURE when a matcher
// cannot proceed at all: an unbound Delayed, a Pattern run against a
// non-string-like source, or a state value a matcher does not recognise.
// Unlike FAILURE, Fatal is not part of ordinary backtracking — the driver
// must abort the parse when it sees one.
type Fatal struct {
	Err error
}

func (Fatal) transition() {}

// Execute builds a Dispatch transition (the "Execute" message).
func Execute(parent Matcher, parentState State, child Matcher, childState State, cur Cursor) Transition {
	return Dispatch{Parent: parent, ParentState: parentState, Child: child, ChildState: childState, Cursor: cur}
}

// Success builds a Resolved transition returned directly from Execute.
func Success(state State, cur Cursor, val Value) Transition {
	return Resolved{State: state, Cursor: cur, Value: val}
}

// Response builds a Resolved transition returned from Success or Failure,
// resolving this matcher without dispatching a further child.
func Response(state State, cur Cursor, val Value) Transition {
	return Resolved{State: state, Cursor: cur, Value: val}
}
