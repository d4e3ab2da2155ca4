package pcomb

// NotState remembers the cursor Not was entered at. Once a NotState has been
// produced, Not has already delivered its single solution and any further
// re-entry fails — Not never backtracks into Child.
type NotState struct {
	Saved Cursor
}

// Not succeeds with EMPTY, without advancing, exactly when Child fails; it
// fails on Child's first solution, it never tries Child's alternatives.
type Not struct {
	Child Matcher
}

func NewNot(child Matcher) Not { return Not{Child: child} }

func (m Not) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		return dispatch(m, NotState{Saved: cur}, m.Child, CLEAN, cur)
	case NotState, dirtyState:
		return FAILURE
	default:
		return newContractError("Not", "Execute", state)
	}
}

func (m Not) Success(parentState, childState State, cur Cursor, val Value) Transition {
	if _, ok := parentState.(NotState); !ok {
		return newContractError("Not", "Success", parentState)
	}
	return FAILURE
}

func (m Not) Failure(parentState State) Transition {
	ns, ok := parentState.(NotState)
	if !ok {
		return newContractError("Not", "Failure", parentState)
	}
	return Response(NotState{Saved: ns.Saved}, ns.Saved, EMPTY)
}
