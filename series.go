package pcomb

// SeriesState is three parallel stacks: Cursors[k] is the cursor after the
// k-th child matched (Cursors[0] is the initial cursor), ChildStates[k] is
// that child's own resume state, Results[k] is the Value it produced.
type SeriesState struct {
	Results     []Value
	Cursors     []Cursor
	ChildStates []State
}

func (s SeriesState) depth() int { return len(s.Results) }

func popSeries(s SeriesState) (popped int, rest SeriesState) {
	k := s.depth() - 1
	return k, SeriesState{
		Results:     s.Results[:k],
		Cursors:     s.Cursors[:k+1],
		ChildStates: s.ChildStates[:k],
	}
}

func pushSeries(s SeriesState, val Value, cur Cursor, cs State) SeriesState {
	return SeriesState{
		Results:     append(append([]Value{}, s.Results...), val),
		Cursors:     append(append([]Cursor{}, s.Cursors...), cur),
		ChildStates: append(append([]State{}, s.ChildStates...), cs),
	}
}

// Series matches each child in order; And nests each child's Value as one
// element of the result, Seq flattens them into a single sequence. Both
// share the same backtracking state machine: on failure (or on being asked
// for another solution after a full match) it walks left, exhaustively
// retrying the most recently matched child before giving up on it and
// retrying the one before that.
type Series struct {
	Children []Matcher
	Flatten  bool
}

// NewSeries builds a Series combinator; flatten picks Seq-style
// concatenation (true) or And-style nesting (false).
func NewSeries(flatten bool, children ...Matcher) Series {
	return Series{Children: children, Flatten: flatten}
}

// Seq flattens every child's Value into one sequence.
func Seq(children ...Matcher) Series { return NewSeries(true, children...) }

// And nests each child's whole Value as a single element of the result.
func And(children ...Matcher) Series { return NewSeries(false, children...) }

func (m Series) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		if len(m.Children) == 0 {
			return Success(DIRTY, cur, EMPTY)
		}
		return dispatch(m, SeriesState{Cursors: []Cursor{cur}}, m.Children[0], CLEAN, cur)
	case SeriesState:
		k, rest := popSeries(s)
		return dispatch(m, rest, m.Children[k], s.ChildStates[k], s.Cursors[k])
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Series", "Execute", state)
	}
}

func (m Series) Success(parentState, childState State, cur Cursor, val Value) Transition {
	ps, ok := parentState.(SeriesState)
	if !ok {
		return newContractError("Series", "Success", parentState)
	}

	n := ps.depth()
	next := pushSeries(ps, val, cur, childState)
	if n+1 == len(m.Children) {
		return Success(next, cur, assemble(next.Results, m.Flatten))
	}
	return dispatch(m, next, m.Children[n+1], CLEAN, cur)
}

func (m Series) Failure(parentState State) Transition {
	ps, ok := parentState.(SeriesState)
	if !ok {
		return newContractError("Series", "Failure", parentState)
	}

	if ps.depth() == 0 {
		return FAILURE
	}
	k, rest := popSeries(ps)
	return dispatch(m, rest, m.Children[k], ps.ChildStates[k], ps.Cursors[k])
}
