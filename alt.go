package pcomb

// AltState tracks which alternative is currently active (1-based), its
// resume state, and the cursor every alternative is tried from.
type AltState struct {
	Child State
	Saved Cursor
	Index int
}

// Alt tries each child in order, left to right, backtracking into the
// current alternative's own solutions before moving to the next one.
type Alt struct {
	Children []Matcher
}

func NewAlt(children ...Matcher) Alt { return Alt{Children: children} }

func (m Alt) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		if len(m.Children) == 0 {
			return FAILURE
		}
		return dispatch(m, AltState{Child: CLEAN, Saved: cur, Index: 1}, m.Children[0], CLEAN, cur)
	case AltState:
		return dispatch(m, s, m.Children[s.Index-1], s.Child, s.Saved)
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Alt", "Execute", state)
	}
}

func (m Alt) Success(parentState, childState State, cur Cursor, val Value) Transition {
	as, ok := parentState.(AltState)
	if !ok {
		return newContractError("Alt", "Success", parentState)
	}
	return Response(AltState{Child: childState, Saved: as.Saved, Index: as.Index}, cur, val)
}

func (m Alt) Failure(parentState State) Transition {
	as, ok := parentState.(AltState)
	if !ok {
		return newContractError("Alt", "Failure", parentState)
	}
	if as.Index == len(m.Children) {
		return FAILURE
	}
	next := as.Index + 1
	return dispatch(m, AltState{Child: CLEAN, Saved: as.Saved, Index: next}, m.Children[next-1], CLEAN, as.Saved)
}
