package pcomb

// Matcher is an immutable description of a parsing rule. Matchers form a DAG;
// cycles are only permitted through Delayed. Identity for combinators is
// structural (same constructor, same fields); Delayed is the one exception,
// compared by pointer identity to avoid walking into its own cycle.
//
// Execute enters or re-enters the matcher directly: with CLEAN on first
// entry, or with a state this matcher itself produced (returned inside an
// earlier Resolved) when its own parent asks for another solution.
//
// Success and Failure are called by the driver, never by application code,
// to deliver the outcome of a child this matcher dispatched: ParentState is
// whatever this matcher saved in the Dispatch that spawned the child,
// ChildState is the state the child resolved with (only meaningful on
// success, since a failed child has no resumable state to remember).
type Matcher interface {
	Execute(state State, cur Cursor) Transition
	Success(parentState, childState State, cur Cursor, val Value) Transition
	Failure(parentState State) Transition
}

func dispatch(parent Matcher, parentState State, child Matcher, childState State, cur Cursor) Transition {
	return Execute(parent, parentState, child, childState, cur)
}
