package pcomb

// Delayed is a one-shot, late-bound indirection used to tie the knot in
// recursive grammars. Its identity is the pointer to the cell, never its
// (unset, at construction time) child, so that comparing or hashing a
// Delayed never walks into the cycle it creates.
//
// Delayed carries no state of its own: every state that ever reaches it
// (besides DIRTY) belongs to Child, and Execute forwards it unchanged. The
// driver in turn only ever calls Success/Failure on whichever matcher named
// itself as Parent in a Dispatch — since Delayed never does that, its own
// Success and Failure are unreachable in a correctly behaving driver.
type Delayed struct {
	cell *delayedCell
}

type delayedCell struct {
	child Matcher
}

// NewDelayed creates an unbound forward reference. Call Set exactly once,
// before any parse that reaches it, to complete the grammar.
func NewDelayed() Delayed {
	return Delayed{cell: &delayedCell{}}
}

// Set assigns the child matcher. Calling it a second time is a programming
// error, not a parse-time one, and panics rather than returning a Fatal:
// there is no in-progress parse yet for a Fatal to abort.
func (d Delayed) Set(child Matcher) {
	if d.cell.child != nil {
		panic("pcomb: Delayed.Set called more than once")
	}
	d.cell.child = child
}

func (d Delayed) Execute(state State, cur Cursor) Transition {
	if state == DIRTY {
		return FAILURE
	}
	if d.cell.child == nil {
		return newConfigError("Delayed: child matcher not set")
	}
	return d.cell.child.Execute(state, cur)
}

func (d Delayed) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return newContractError("Delayed", "Success", parentState)
}

func (d Delayed) Failure(parentState State) Transition {
	return newContractError("Delayed", "Failure", parentState)
}
