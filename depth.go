package pcomb

import "math"

// Unbounded stands for "no upper bound" when passed as hi to Depth, Breadth,
// or Repeat.
const Unbounded = math.MaxInt

type repFrames struct {
	Results []Value
	Cursors []Cursor
	States  []State
}

func (f repFrames) depth() int { return len(f.Results) }
func (f repFrames) top() Cursor { return f.Cursors[len(f.Cursors)-1] }

func pushFrame(f repFrames, val Value, cur Cursor, cs State) repFrames {
	return repFrames{
		Results: append(append([]Value{}, f.Results...), val),
		Cursors: append(append([]Cursor{}, f.Cursors...), cur),
		States:  append(append([]State{}, f.States...), cs),
	}
}

func popFrame(f repFrames) (childState State, priorCursor Cursor, rest repFrames) {
	k := f.depth() - 1
	return f.States[k], f.Cursors[k], repFrames{
		Results: f.Results[:k],
		Cursors: f.Cursors[:k+1],
		States:  f.States[:k],
	}
}

// depthSlurp is an internal phase of Depth's state machine; it only ever
// appears as a ParentState inside a Dispatch this matcher itself issued,
// never as a state handed back to Depth's own parent. Yield never waits on a
// Dispatch, so it has no state type of its own. The only externally visible
// resumable state is depthBacktrack.
type depthSlurp struct{ repFrames }
type depthBacktrack struct{ repFrames }

// Depth implements greedy, depth-first bounded repetition: it matches Child
// as many times as possible first (up to Hi), then backtracks to shallower
// counts one match at a time, yielding a solution at each count in
// [Lo, Hi] it passes through on the way back up, deepest first.
type Depth struct {
	Child   Matcher
	Lo, Hi  int
	Flatten bool
}

func NewDepth(child Matcher, lo, hi int, flatten bool) Depth {
	return Depth{Child: child, Lo: lo, Hi: hi, Flatten: flatten}
}

func (m Depth) slurp(f repFrames) Transition {
	if f.depth() >= m.Hi {
		return m.yield(f)
	}
	return dispatch(m, depthSlurp{f}, m.Child, CLEAN, f.top())
}

func (m Depth) yield(f repFrames) Transition {
	if f.depth() >= m.Lo {
		return Success(depthBacktrack{f}, f.top(), assemble(f.Results, m.Flatten))
	}
	return m.backtrack(f)
}

func (m Depth) backtrack(f repFrames) Transition {
	if f.depth() == 0 {
		return FAILURE
	}
	childState, priorCursor, rest := popFrame(f)
	return dispatch(m, depthBacktrack{rest}, m.Child, childState, priorCursor)
}

func (m Depth) Execute(state State, cur Cursor) Transition {
	switch s := state.(type) {
	case cleanState:
		return m.slurp(repFrames{Cursors: []Cursor{cur}})
	case depthBacktrack:
		return m.backtrack(s.repFrames)
	case dirtyState:
		return FAILURE
	default:
		return newContractError("Depth", "Execute", state)
	}
}

func (m Depth) Success(parentState, childState State, cur Cursor, val Value) Transition {
	switch s := parentState.(type) {
	case depthSlurp:
		return m.slurp(pushFrame(s.repFrames, val, cur, childState))
	case depthBacktrack:
		return m.slurp(pushFrame(s.repFrames, val, cur, childState))
	default:
		return newContractError("Depth", "Success", parentState)
	}
}

func (m Depth) Failure(parentState State) Transition {
	switch s := parentState.(type) {
	case depthSlurp:
		return m.yield(s.repFrames)
	case depthBacktrack:
		return m.yield(s.repFrames)
	default:
		return newContractError("Depth", "Failure", parentState)
	}
}
