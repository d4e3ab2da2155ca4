package pcomb

// DropState records the child's resume state between solutions.
type DropState struct {
	Child State
}

// Drop delegates to Child but discards its Value, reporting EMPTY instead.
// It has no backtracking logic of its own: asking Drop for another solution
// simply asks Child for another solution and drops that one too.
type Drop struct {
	Child Matcher
}

func NewDrop(child Matcher) Drop { return Drop{Child: child} }

func (m Drop) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		return dispatch(m, CLEAN, m.Child, CLEAN, cur)
	case DropState:
		return dispatch(m, s, m.Child, s.Child, cur)
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Drop", "Execute", state)
	}
}

func (m Drop) Success(parentState, childState State, cur Cursor, val Value) Transition {
	switch parentState.(type) {
	case cleanState, DropState:
		return Response(DropState{Child: childState}, cur, EMPTY)
	default:
		return newContractError("Drop", "Success", parentState)
	}
}

func (m Drop) Failure(parentState State) Transition {
	switch parentState.(type) {
	case cleanState, DropState:
		return FAILURE
	default:
		return newContractError("Drop", "Failure", parentState)
	}
}
