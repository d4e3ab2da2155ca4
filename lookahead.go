package pcomb

// LookaheadState remembers the child's resume state and the cursor to
// restore once the child succeeds.
type LookaheadState struct {
	Child State
	Saved Cursor
}

// Lookahead runs Child at the current cursor but, on success, restores the
// original cursor and discards the Value — it only asks "could Child match
// here," without consuming anything.
type Lookahead struct {
	Child Matcher
}

func NewLookahead(child Matcher) Lookahead { return Lookahead{Child: child} }

func (m Lookahead) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		return dispatch(m, LookaheadState{Child: CLEAN, Saved: cur}, m.Child, CLEAN, cur)
	case LookaheadState:
		return dispatch(m, s, m.Child, s.Child, s.Saved)
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Lookahead", "Execute", state)
	}
}

func (m Lookahead) Success(parentState, childState State, cur Cursor, val Value) Transition {
	ls, ok := parentState.(LookaheadState)
	if !ok {
		return newContractError("Lookahead", "Success", parentState)
	}
	return Response(LookaheadState{Child: childState, Saved: ls.Saved}, ls.Saved, EMPTY)
}

func (m Lookahead) Failure(parentState State) Transition {
	if _, ok := parentState.(LookaheadState); !ok {
		return newContractError("Lookahead", "Failure", parentState)
	}
	return FAILURE
}
